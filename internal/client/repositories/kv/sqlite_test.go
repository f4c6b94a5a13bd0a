package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetThenGet(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte(`"abc"`)))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`"abc"`), v)
}

func TestSQLite_GetAbsent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_SetNil_StoresEmptyValue(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLite_ListAndClear(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{1}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestSQLite_RunInTx_CommitsAll(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	err := RunInTx(ctx, r, func(ctx context.Context, s Store) error {
		if err := s.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return s.Set(ctx, "b", []byte("2"))
	})
	require.NoError(t, err)

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
}

func TestSQLite_RunInTx_RollsBackOnError(t *testing.T) {
	r := NewSQLiteStore(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "a", []byte("before")))

	boom := errors.New("boom")
	err := RunInTx(ctx, r, func(ctx context.Context, s Store) error {
		require.NoError(t, s.Set(ctx, "a", []byte("after")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("before"), v)

	v, err = r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_MissingTable_ReturnsError(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteStore(db)
	ctx := context.Background()

	_, err = r.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get kv[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.Error(t, err)

	_, err = r.List(ctx)
	require.Error(t, err)
}
