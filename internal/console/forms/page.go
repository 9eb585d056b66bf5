package forms

import (
	"strconv"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// Page sizes of the list views.
const (
	NameListPageSize = 6
	RiskLogPageSize  = 8
)

// Page is one page of a client-side paginated list.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	CanPrev    bool
	CanNext    bool
}

// Paginate cuts page (1-based) out of items. There is always at least one
// page; a page past the end is empty.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	pages := max(1, (total+size-1)/size)

	start, end := total, total
	if page <= pages {
		start = (page - 1) * size
		end = min(start+size, total)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
		CanPrev:    page > 1,
		CanNext:    page < pages,
	}
}

// NameListFilter narrows the name list view. Empty fields match anything.
type NameListFilter struct {
	Scope  consoleapi.Scope
	Status string
}

func (f NameListFilter) Apply(lists []consoleapi.NameList) []consoleapi.NameList {
	var out []consoleapi.NameList
	for _, nl := range lists {
		if f.Scope != "" && nl.Scope != f.Scope {
			continue
		}
		if f.Status != "" && strconv.Itoa(nl.Status) != f.Status {
			continue
		}
		out = append(out, nl)
	}
	return out
}

// RiskLogFilter narrows the risk log view. Empty fields match anything.
type RiskLogFilter struct {
	AppID    string
	RiskType string
}

func (f RiskLogFilter) Apply(logs []consoleapi.RiskLogItem) []consoleapi.RiskLogItem {
	var out []consoleapi.RiskLogItem
	for _, it := range logs {
		if f.AppID != "" && it.AppID != f.AppID {
			continue
		}
		if f.RiskType != "" && it.RiskType.String() != f.RiskType {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Query returns the server-side form of the filter.
func (f RiskLogFilter) Query() consoleapi.RiskLogQuery {
	return consoleapi.RiskLogQuery{AppID: f.AppID, RiskType: f.RiskType}
}
