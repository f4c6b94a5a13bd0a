package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wordtrail/internal/client/client"
	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// LexiconService lists the wordbooks available on the backend.
type LexiconService interface {
	ListLexicons(ctx context.Context) ([]models.Lexicon, error)
}

type lexiconService struct {
	store kv.Store
	api   client.Client
	log   logging.Logger
}

func NewLexiconService(store kv.Store, api client.Client, log logging.Logger) LexiconService {
	return &lexiconService{
		store: store,
		api:   api,
		log:   log.With("service", "lexicon"),
	}
}

func (l *lexiconService) ListLexicons(ctx context.Context) ([]models.Lexicon, error) {
	tok := readToken(ctx, l.store, l.log)
	if tok == "" {
		return nil, common.ErrNotAuthenticated
	}

	books, err := l.api.ListWordbooks(ctx, tok)
	if err != nil {
		l.log.Error(ctx, "failed to list wordbooks", "token", common.TokenFingerprint(tok), "err", err)
		return nil, fmt.Errorf("list wordbooks: %w", err)
	}
	return books, nil
}
