package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/notify"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// SessionService tracks the selected language and lexicon.
type SessionService interface {
	// GetCurrentLanguage returns the stored language, or the default
	// language when the stored code is absent or unsupported.
	GetCurrentLanguage(ctx context.Context) models.LanguageInfo
	// SetCurrentLanguage stores code as is. Unsupported codes fall back on
	// the next read.
	SetCurrentLanguage(ctx context.Context, code string)

	GetCurrentLexicon(ctx context.Context) *models.CurrentLexicon
	// SetCurrentLexicon stores lex, reads it back and notifies the user
	// whether the stored value matches.
	SetCurrentLexicon(ctx context.Context, lex models.CurrentLexicon)
	ClearCurrentLexicon(ctx context.Context)
}

type sessionService struct {
	store    kv.Store
	notifier notify.Notifier
	log      logging.Logger
}

func NewSessionService(store kv.Store, notifier notify.Notifier, log logging.Logger) SessionService {
	return &sessionService{
		store:    store,
		notifier: notifier,
		log:      log.With("service", "session"),
	}
}

func (s *sessionService) GetCurrentLanguage(ctx context.Context) models.LanguageInfo {
	code, _, err := kv.GetString(ctx, s.store, kv.KeyCurrentLanguage)
	if err != nil {
		s.log.Warn(ctx, "failed to read language", "err", err)
		return models.DefaultLanguage()
	}

	if lang, ok := models.LookupLanguage(code); ok {
		return lang
	}
	return models.DefaultLanguage()
}

func (s *sessionService) SetCurrentLanguage(ctx context.Context, code string) {
	if err := kv.SetString(ctx, s.store, kv.KeyCurrentLanguage, code); err != nil {
		s.log.Error(ctx, "failed to save language", "code", code, "err", err)
	}
}

func (s *sessionService) GetCurrentLexicon(ctx context.Context) *models.CurrentLexicon {
	raw, err := s.store.Get(ctx, kv.KeyCurrentLexicon)
	if err != nil {
		s.log.Warn(ctx, "failed to read current lexicon", "err", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	lex, err := decodeLexicon(raw)
	if err != nil {
		s.log.Warn(ctx, "failed to decode current lexicon",
			"err", fmt.Errorf("%w: %w", common.ErrStoreRead, err))
		return nil
	}
	return lex
}

func (s *sessionService) SetCurrentLexicon(ctx context.Context, lex models.CurrentLexicon) {
	b, err := json.Marshal(lex)
	if err != nil {
		s.log.Error(ctx, "failed to encode lexicon", "err", err)
		return
	}

	if err := kv.SetString(ctx, s.store, kv.KeyCurrentLexicon, string(b)); err != nil {
		s.log.Error(ctx, "failed to save current lexicon", "lexicon_id", lex.ID, "err", err)
	}

	if stored := s.GetCurrentLexicon(ctx); stored != nil && *stored == lex {
		s.notifier.Notify(ctx, notify.Message{Title: MsgLexiconSaved, Icon: notify.IconSuccess})
		return
	}
	s.notifier.Notify(ctx, notify.Message{Title: MsgLexiconSaveFailed, Icon: notify.IconNone})
}

func (s *sessionService) ClearCurrentLexicon(ctx context.Context) {
	if err := s.store.Delete(ctx, kv.KeyCurrentLexicon); err != nil {
		s.log.Error(ctx, "failed to clear current lexicon", "err", err)
	}
}

// decodeLexicon reads the JSON string written by SetCurrentLexicon. A bare
// object is accepted too. An empty string or null reads as no selection.
func decodeLexicon(raw []byte) (*models.CurrentLexicon, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil, nil
		}
		raw = []byte(s)
	}

	var lex *models.CurrentLexicon
	if err := json.Unmarshal(raw, &lex); err != nil {
		return nil, err
	}
	if lex == nil {
		return nil, nil
	}
	return lex, nil
}
