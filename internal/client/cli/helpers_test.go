package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

type fakeAPI struct {
	saveErr   error
	saved     [][2]int
	goal      *models.LearningGoal
	goalErr   error
	detail    *models.UserDetail
	detailErr error
	books     []models.Lexicon
	booksErr  error
	tokens    []string
}

func (f *fakeAPI) SaveLearningGoal(ctx context.Context, token string, newWords, reviewWords int) error {
	f.tokens = append(f.tokens, token)
	f.saved = append(f.saved, [2]int{newWords, reviewWords})
	return f.saveErr
}

func (f *fakeAPI) GetLearningGoal(ctx context.Context, token string) (*models.LearningGoal, error) {
	f.tokens = append(f.tokens, token)
	return f.goal, f.goalErr
}

func (f *fakeAPI) GetUserDetail(ctx context.Context, token, userID string) (*models.UserDetail, error) {
	f.tokens = append(f.tokens, token)
	return f.detail, f.detailErr
}

func (f *fakeAPI) ListWordbooks(ctx context.Context, token string) ([]models.Lexicon, error) {
	f.tokens = append(f.tokens, token)
	return f.books, f.booksErr
}

type harness struct {
	app   *App
	store *kv.MemoryStore
	api   *fakeAPI
	out   *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	h := &harness{
		store: kv.NewMemoryStore(),
		api:   &fakeAPI{},
		out:   &bytes.Buffer{},
	}
	h.app = newApp(h.store, h.api, logging.NewNop(), strings.NewReader(input), h.out)
	return h
}

// exec runs one command line and returns what it printed.
func (h *harness) exec(t *testing.T, args ...string) (string, error) {
	t.Helper()
	h.out.Reset()
	err := h.app.run(context.Background(), args)
	return h.out.String(), err
}

func (h *harness) signIn(t *testing.T, token, userID, username string) {
	t.Helper()
	require.NoError(t, h.app.auth.SignIn(context.Background(), token, userID, username))
}
