package pg

import (
	"context"
	"testing"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	ctx := context.Background()
	userId := mustUser(t)
	b := mustBoard(t, userId, "sections")

	sec := mustSection(t, b.Id, "Todo")
	assert.Equal(t, "Todo", sec.Title)
	assert.Equal(t, b.Id, sec.BoardId)
	assert.Equal(t, userId, sec.UserId)

	t.Run("get resolves owner", func(t *testing.T) {
		got, err := storage.Section(ctx, sec.Id)
		require.NoError(t, err)
		assert.Equal(t, userId, got.UserId)
		assert.Equal(t, sec.Title, got.Title)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := storage.UpdateSection(ctx, sec.Id, "Doing")
		require.NoError(t, err)
		assert.Equal(t, "Doing", updated.Title)
		assert.Equal(t, userId, updated.UserId)
	})

	t.Run("create under missing board", func(t *testing.T) {
		_, err := storage.CreateSection(ctx, domain.SectionCreationData{Title: "x", BoardId: -1})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := storage.UpdateSection(ctx, -1, "x")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestDeleteSectionCascades(t *testing.T) {
	ctx := context.Background()
	b := mustBoard(t, mustUser(t), "cascade")
	sec := mustSection(t, b.Id, "Todo")
	other := mustSection(t, b.Id, "Done")
	gone := mustCard(t, sec.Id, "gone", nil)
	kept := mustCard(t, other.Id, "kept", nil)

	require.NoError(t, storage.DeleteSection(ctx, sec.Id))

	_, err := storage.Card(ctx, gone.Id)
	assert.True(t, errors.IsNotFound(err))
	_, err = storage.Card(ctx, kept.Id)
	assert.NoError(t, err)
	_, err = storage.Board(ctx, b.Id)
	assert.NoError(t, err)

	assert.True(t, errors.IsNotFound(storage.DeleteSection(ctx, sec.Id)))
}
