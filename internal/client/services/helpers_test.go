package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/logging"

	_ "modernc.org/sqlite"
)

var errStore = errors.New("store is broken")

// ---- helpers ----

func newLogger() logging.Logger { return logging.NewNop() }

func setupSQLiteStore(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return kv.NewSQLiteStore(db)
}

func seed(t *testing.T, s kv.Store, key, raw string) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), key, []byte(raw)))
}

func rawValue(t *testing.T, s kv.Store, key string) []byte {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// ---- fake store ----

// brokenStore fails the configured operations for the listed keys.
// An empty key set fails every key.
type brokenStore struct {
	kv.Store
	getKeys map[string]bool
	setKeys map[string]bool
	failGet bool
	failSet bool
	failDel bool
}

func (b *brokenStore) matches(keys map[string]bool, key string) bool {
	return len(keys) == 0 || keys[key]
}

func (b *brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	if b.failGet && b.matches(b.getKeys, key) {
		return nil, errStore
	}
	return b.Store.Get(ctx, key)
}

func (b *brokenStore) Set(ctx context.Context, key string, value []byte) error {
	if b.failSet && b.matches(b.setKeys, key) {
		return errStore
	}
	return b.Store.Set(ctx, key, value)
}

func (b *brokenStore) Delete(ctx context.Context, key string) error {
	if b.failDel {
		return errStore
	}
	return b.Store.Delete(ctx, key)
}

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	SaveGoalErr error
	GoalRet     *models.LearningGoal
	GoalErr     error
	DetailRet   *models.UserDetail
	DetailErr   error
	BooksRet    []models.Lexicon
	BooksErr    error

	Calls          int
	LastToken      string
	LastNewWords   int
	LastReview     int
	LastUserDetail string
}

func (f *fakeClient) record(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastToken = token
}

func (f *fakeClient) SaveLearningGoal(ctx context.Context, token string, newWords, reviewWords int) error {
	f.record(token)
	f.LastNewWords, f.LastReview = newWords, reviewWords
	return f.SaveGoalErr
}

func (f *fakeClient) GetLearningGoal(ctx context.Context, token string) (*models.LearningGoal, error) {
	f.record(token)
	return f.GoalRet, f.GoalErr
}

func (f *fakeClient) GetUserDetail(ctx context.Context, token, userID string) (*models.UserDetail, error) {
	f.record(token)
	f.LastUserDetail = userID
	return f.DetailRet, f.DetailErr
}

func (f *fakeClient) ListWordbooks(ctx context.Context, token string) ([]models.Lexicon, error) {
	f.record(token)
	return f.BooksRet, f.BooksErr
}
