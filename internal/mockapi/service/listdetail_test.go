package service

import (
	"testing"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/stretchr/testify/require"
)

func TestListDetails(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	words, err := f.lists.Create(ctx, sensitiveInput("words"), "ops")
	require.NoError(t, err)
	other, err := f.lists.Create(ctx, sensitiveInput("other"), "ops")
	require.NoError(t, err)

	d, err := f.details.Add(ctx, words.No, " spam ", "memo", "ops")
	require.NoError(t, err)
	require.Equal(t, "spam", d.Text)
	require.Equal(t, words.No, d.ListNo)

	_, err = f.details.Add(ctx, words.No, "spam", "", "ops")
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = f.details.Add(ctx, "missing-list", "x", "", "ops")
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("batch skips existing entries", func(t *testing.T) {
		added, err := f.details.AddBatch(ctx, words.No, []string{"spam", "scam", "scam", " ", "eggs"}, "ops")
		require.NoError(t, err)
		require.Equal(t, 2, added)

		_, err = f.details.AddBatch(ctx, words.No, nil, "ops")
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("search", func(t *testing.T) {
		found, err := f.details.Search(ctx, "am")
		require.NoError(t, err)
		require.Len(t, found, 2)

		found, err = f.details.Search(ctx, "  ")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Empty(t, found)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, f.details.Update(ctx, d.ID, "spammer", "edited", "ops"))
		got, err := f.details.Get(ctx, d.ID)
		require.NoError(t, err)
		require.Equal(t, "spammer", got.Text)
		require.Equal(t, "edited", got.Memo)

		require.ErrorIs(t, f.details.Update(ctx, d.ID, "scam", "", "ops"), ErrDuplicate)
	})

	t.Run("batch delete needs one list", func(t *testing.T) {
		foreign, err := f.details.Add(ctx, other.No, "elsewhere", "", "ops")
		require.NoError(t, err)

		require.ErrorIs(t, f.details.DeleteBatch(ctx, []int64{d.ID, foreign.ID}, "ops"), ErrInvalidValue)
		_, err = f.details.Get(ctx, d.ID)
		require.NoError(t, err, "nothing deleted")

		require.ErrorIs(t, f.details.DeleteBatch(ctx, []int64{d.ID, 9999}, "ops"), store.ErrNotFound)
		require.ErrorIs(t, f.details.DeleteBatch(ctx, nil, "ops"), ErrMissingField)

		require.NoError(t, f.details.DeleteBatch(ctx, []int64{d.ID, d.ID}, "ops"))
		_, err = f.details.Get(ctx, d.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete by text", func(t *testing.T) {
		require.NoError(t, f.details.DeleteByText(ctx, "words", "eggs", "ops"))
		require.ErrorIs(t, f.details.DeleteByText(ctx, "words", "eggs", "ops"), store.ErrNotFound)
		require.ErrorIs(t, f.details.DeleteByText(ctx, "nope", "scam", "ops"), store.ErrNotFound)
		require.ErrorIs(t, f.details.DeleteByText(ctx, "words", "scam", ""), ErrMissingField)
	})

	t.Run("single delete", func(t *testing.T) {
		got, err := f.details.Search(ctx, "scam")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NoError(t, f.details.Delete(ctx, got[0].ID, "ops"))
		require.ErrorIs(t, f.details.Delete(ctx, got[0].ID, "ops"), store.ErrNotFound)
	})
}
