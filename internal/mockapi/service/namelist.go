package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// NameListInput is the writable part of a name list.
type NameListInput struct {
	Name          string
	Type          int
	MatchRule     int
	MatchType     int
	Suggest       int
	RiskType      int
	Status        int
	Scope         string
	LanguageScope string
	LanguageCodes []string
	AppIDs        []string
	ChannelIDs    []int64
}

type NameListService struct {
	Store store.Store
	Clock clockwork.Clock
}

func (s *NameListService) List(ctx context.Context) ([]domain.NameList, error) {
	return s.Store.NameLists().ListNameLists(ctx)
}

// Get resolves lid as a numeric id, then as a list no, then as a name.
func (s *NameListService) Get(ctx context.Context, lid string) (domain.NameList, error) {
	return resolveNameList(ctx, s.Store, lid)
}

func resolveNameList(ctx context.Context, st store.Store, lid string) (domain.NameList, error) {
	lid = strings.TrimSpace(lid)
	if lid == "" {
		return domain.NameList{}, store.ErrNotFound
	}
	repo := st.NameLists()
	if id, err := strconv.ParseInt(lid, 10, 64); err == nil {
		n, err := repo.GetNameListByID(ctx, id)
		if !errors.Is(err, store.ErrNotFound) {
			return n, err
		}
	}
	n, err := repo.GetNameListByNo(ctx, lid)
	if !errors.Is(err, store.ErrNotFound) {
		return n, err
	}
	return repo.GetNameListByName(ctx, lid)
}

func (s *NameListService) Create(ctx context.Context, in NameListInput, by string) (domain.NameList, error) {
	if err := requireFields("username", by); err != nil {
		return domain.NameList{}, err
	}
	n, err := s.normalize(in)
	if err != nil {
		return domain.NameList{}, err
	}

	now := clockOrReal(s.Clock).Now()
	n.No = uuid.NewString()
	n.CreatedBy, n.UpdatedBy = by, by
	n.CreatedAt, n.UpdatedAt = now, now

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.NameLists().CreateNameList(ctx, n)
		if err != nil {
			return err
		}
		n.ID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.NameList{}, paramErr(ErrDuplicate, "name list %s already exists", n.Name)
		}
		return domain.NameList{}, err
	}
	return n, nil
}

func (s *NameListService) Update(ctx context.Context, lid string, in NameListInput, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	n, err := s.normalize(in)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := resolveNameList(ctx, tx, lid)
		if err != nil {
			return err
		}
		n.ID, n.No = cur.ID, cur.No
		n.UpdatedBy = by
		n.UpdatedAt = clockOrReal(s.Clock).Now()
		return tx.NameLists().UpdateNameList(ctx, n)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return paramErr(ErrDuplicate, "name list %s already exists", n.Name)
	}
	return err
}

// SetStatus enables (1) or disables (0) a list.
func (s *NameListService) SetStatus(ctx context.Context, lid string, status int, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	if status != domain.StatusEnabled && status != domain.StatusDisabled {
		return paramErr(ErrInvalidValue, "status must be 0 or 1")
	}
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := resolveNameList(ctx, tx, lid)
		if err != nil {
			return err
		}
		return tx.NameLists().SetNameListStatus(ctx, n.ID, status, by, clockOrReal(s.Clock).Now())
	})
}

// Delete removes the list together with its details.
func (s *NameListService) Delete(ctx context.Context, lid, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	now := clockOrReal(s.Clock).Now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := resolveNameList(ctx, tx, lid)
		if err != nil {
			return err
		}
		if err := tx.ListDetails().DeleteListDetailsByList(ctx, n.ID, by, now); err != nil {
			return err
		}
		return tx.NameLists().DeleteNameList(ctx, n.ID, by, now)
	})
}

// normalize validates in and applies the scope rules: a global list has no
// apps or channels, an app list has no channels.
func (s *NameListService) normalize(in NameListInput) (domain.NameList, error) {
	n := domain.NameList{
		Name:          strings.TrimSpace(in.Name),
		Type:          in.Type,
		MatchRule:     in.MatchRule,
		MatchType:     in.MatchType,
		Suggest:       in.Suggest,
		RiskType:      in.RiskType,
		Status:        in.Status,
		Scope:         strings.ToUpper(strings.TrimSpace(in.Scope)),
		LanguageScope: strings.ToUpper(strings.TrimSpace(in.LanguageScope)),
		AppIDs:        dedupeStrings(in.AppIDs),
		ChannelIDs:    dedupeInts(in.ChannelIDs),
	}
	if n.Name == "" {
		return n, paramErr(ErrMissingField, "name is required")
	}

	switch n.Type {
	case domain.ListTypeWhite, domain.ListTypeSensitive, domain.ListTypeIgnore:
	default:
		return n, paramErr(ErrInvalidValue, "unknown list type %d", n.Type)
	}
	switch n.MatchType {
	case domain.MatchTextAndNickname, domain.MatchText, domain.MatchNickname, domain.MatchIP, domain.MatchAccount:
	default:
		return n, paramErr(ErrInvalidValue, "unknown match type %d", n.MatchType)
	}
	if n.Suggest < domain.SuggestReject || n.Suggest > domain.SuggestReview {
		return n, paramErr(ErrInvalidValue, "unknown suggestion %d", n.Suggest)
	}
	if n.Status != domain.StatusEnabled && n.Status != domain.StatusDisabled {
		return n, paramErr(ErrInvalidValue, "status must be 0 or 1")
	}

	switch n.Scope {
	case domain.ScopeGlobal:
		n.AppIDs, n.ChannelIDs = []string{}, []int64{}
	case domain.ScopeApp:
		n.ChannelIDs = []int64{}
	case domain.ScopeAppChannel:
	default:
		return n, paramErr(ErrInvalidValue, "unknown scope %q", in.Scope)
	}
	if len(n.AppIDs) > domain.MaxScopeMembers {
		return n, paramErr(ErrLimitExceeded, "at most %d apps", domain.MaxScopeMembers)
	}
	if len(n.ChannelIDs) > domain.MaxScopeMembers {
		return n, paramErr(ErrLimitExceeded, "at most %d channels", domain.MaxScopeMembers)
	}

	switch n.LanguageScope {
	case "", domain.LanguageAll:
		n.LanguageScope = domain.LanguageAll
		n.LanguageCodes = []string{}
	case domain.LanguageSpecific:
		for _, c := range in.LanguageCodes {
			if c = strings.ToLower(strings.TrimSpace(c)); c != "" && !slices.Contains(n.LanguageCodes, c) {
				n.LanguageCodes = append(n.LanguageCodes, c)
			}
		}
		if len(n.LanguageCodes) == 0 {
			return n, paramErr(ErrMissingField, "language codes are required for a specific language scope")
		}
	default:
		return n, paramErr(ErrInvalidValue, "unknown language scope %q", in.LanguageScope)
	}
	return n, nil
}

func dedupeStrings(in []string) []string {
	out := []string{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func dedupeInts(in []int64) []int64 {
	out := []int64{}
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
