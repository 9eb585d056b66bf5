package forms

import "strconv"

// Option is a selectable value with its display label.
type Option struct {
	Value int
	Label string
}

var (
	ListTypes = []Option{{0, "whitelist"}, {1, "sensitive"}, {2, "ignore"}}

	MatchRules = []Option{{1, "exact"}, {2, "semantic"}}

	MatchTypes = []Option{{0, "text+nickname"}, {1, "text"}, {2, "nickname"}, {3, "ip"}, {6, "account"}}

	Suggestions = []Option{{0, "reject"}, {1, "pass"}, {2, "review"}}

	RiskTypes = []Option{{100, "politics"}, {200, "porn"}, {300, "ads"}, {400, "flood"}, {600, "prohibited"}, {700, "other"}}

	Statuses = []Option{{1, "enabled"}, {0, "disabled"}}
)

// Label returns the label of v in opts, or v itself when unknown.
func Label(opts []Option, v int) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return strconv.Itoa(v)
}

// Lookup resolves either a label or a numeric value to its value.
func Lookup(opts []Option, s string) (int, bool) {
	for _, o := range opts {
		if o.Label == s {
			return o.Value, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	for _, o := range opts {
		if o.Value == n {
			return n, true
		}
	}
	return 0, false
}
