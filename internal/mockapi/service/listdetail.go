package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/jonboulle/clockwork"
)

type ListDetailService struct {
	Store store.Store
	Clock clockwork.Clock
}

func (s *ListDetailService) Get(ctx context.Context, id int64) (domain.ListDetail, error) {
	return s.Store.ListDetails().GetListDetail(ctx, id)
}

// Search returns the entries containing text. An empty text matches nothing.
func (s *ListDetailService) Search(ctx context.Context, text string) ([]domain.ListDetail, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.ListDetail{}, nil
	}
	return s.Store.ListDetails().SearchListDetails(ctx, text)
}

// Add stores one entry in the list numbered listNo.
func (s *ListDetailService) Add(ctx context.Context, listNo, text, memo, by string) (domain.ListDetail, error) {
	text = strings.TrimSpace(text)
	if err := requireFields("list_no", listNo, "text", text, "username", by); err != nil {
		return domain.ListDetail{}, err
	}

	var d domain.ListDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.NameLists().GetNameListByNo(ctx, strings.TrimSpace(listNo))
		if err != nil {
			return err
		}
		d = s.newDetail(n, text, strings.TrimSpace(memo), by)
		d.ID, err = tx.ListDetails().CreateListDetail(ctx, d)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ListDetail{}, paramErr(ErrDuplicate, "text %s already exists in the list", text)
		}
		return domain.ListDetail{}, err
	}
	return d, nil
}

// AddBatch stores every new text of texts in one list, skipping blanks and
// entries the list already has. It reports how many were added.
func (s *ListDetailService) AddBatch(ctx context.Context, listNo string, texts []string, by string) (int, error) {
	if err := requireFields("list_no", listNo, "username", by); err != nil {
		return 0, err
	}
	if len(texts) == 0 {
		return 0, paramErr(ErrMissingField, "data is required")
	}

	added := 0
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.NameLists().GetNameListByNo(ctx, strings.TrimSpace(listNo))
		if err != nil {
			return err
		}
		for _, text := range dedupeStrings(texts) {
			_, err := tx.ListDetails().GetListDetailByText(ctx, n.ID, text)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			if _, err := tx.ListDetails().CreateListDetail(ctx, s.newDetail(n, text, "", by)); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (s *ListDetailService) Update(ctx context.Context, id int64, text, memo, by string) error {
	text = strings.TrimSpace(text)
	if err := requireFields("text", text, "username", by); err != nil {
		return err
	}
	err := s.Store.ListDetails().UpdateListDetail(ctx, domain.ListDetail{
		ID:        id,
		Text:      text,
		Memo:      strings.TrimSpace(memo),
		UpdatedBy: by,
		UpdatedAt: clockOrReal(s.Clock).Now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return paramErr(ErrDuplicate, "text %s already exists in the list", text)
	}
	return err
}

func (s *ListDetailService) Delete(ctx context.Context, id int64, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	return s.Store.ListDetails().DeleteListDetail(ctx, id, by, clockOrReal(s.Clock).Now())
}

// DeleteBatch removes several entries at once. They must all belong to the
// same list; nothing is deleted otherwise.
func (s *ListDetailService) DeleteBatch(ctx context.Context, ids []int64, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	ids = dedupeInts(ids)
	if len(ids) == 0 {
		return paramErr(ErrMissingField, "ids is required")
	}

	now := clockOrReal(s.Clock).Now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		var listID int64
		for _, id := range ids {
			d, err := tx.ListDetails().GetListDetail(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("list detail %d: %w", id, err)
				}
				return err
			}
			if listID == 0 {
				listID = d.ListID
			} else if d.ListID != listID {
				return paramErr(ErrInvalidValue, "all ids must belong to the same list")
			}
		}
		for _, id := range ids {
			if err := tx.ListDetails().DeleteListDetail(ctx, id, by, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByText removes text from the list called listName.
func (s *ListDetailService) DeleteByText(ctx context.Context, listName, text, by string) error {
	listName, text = strings.TrimSpace(listName), strings.TrimSpace(text)
	if err := requireFields("list_name", listName, "text", text, "username", by); err != nil {
		return err
	}
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.NameLists().GetNameListByName(ctx, listName)
		if err != nil {
			return err
		}
		d, err := tx.ListDetails().GetListDetailByText(ctx, n.ID, text)
		if err != nil {
			return err
		}
		return tx.ListDetails().DeleteListDetail(ctx, d.ID, by, clockOrReal(s.Clock).Now())
	})
}

func (s *ListDetailService) newDetail(n domain.NameList, text, memo, by string) domain.ListDetail {
	now := clockOrReal(s.Clock).Now()
	return domain.ListDetail{
		ListID:    n.ID,
		ListNo:    n.No,
		Text:      text,
		Memo:      memo,
		CreatedBy: by,
		UpdatedBy: by,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
