package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wordtrail/internal/client/client"
	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
)

func TestListLexicons(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		fc := &fakeClient{}
		_, err := NewLexiconService(kv.NewMemoryStore(), fc, newLogger()).ListLexicons(ctx)
		require.ErrorIs(t, err, common.ErrNotAuthenticated)
		assert.Zero(t, fc.Calls)
	})

	t.Run("ok", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, kv.SetString(ctx, store, kv.KeyToken, "tok"))
		books := []models.Lexicon{{ID: "b1", BookName: "Core500"}}
		fc := &fakeClient{BooksRet: books}

		got, err := NewLexiconService(store, fc, newLogger()).ListLexicons(ctx)
		require.NoError(t, err)
		assert.Equal(t, books, got)
		assert.Equal(t, "tok", fc.LastToken)
	})

	t.Run("forbidden", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, kv.SetString(ctx, store, kv.KeyToken, "tok"))
		fc := &fakeClient{BooksErr: client.ErrUnauthorized}

		_, err := NewLexiconService(store, fc, newLogger()).ListLexicons(ctx)
		require.ErrorIs(t, err, client.ErrUnauthorized)
	})
}
