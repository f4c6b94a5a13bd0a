package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/wordtrail/internal/client/client"
	"github.com/dmitrijs2005/wordtrail/internal/client/models"
	"github.com/dmitrijs2005/wordtrail/internal/client/notify"
	"github.com/dmitrijs2005/wordtrail/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wordtrail/internal/common"
	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// SettingsService manages the learner's pacing preferences.
//
// Reads never fail: an absent, partial or unreadable record resolves to
// models.DefaultLearnSettings. Writes replace the whole record and only log
// failures. The Update methods do not validate their argument.
type SettingsService interface {
	GetSettings(ctx context.Context) models.LearnSettings
	SaveSettings(ctx context.Context, s models.LearnSettings)
	UpdateWordsPerGroup(ctx context.Context, n int)
	UpdateDailyNewWordsGoal(ctx context.Context, n int)
	UpdateDailyReviewWordsGoal(ctx context.Context, n int)

	// SaveLearningGoalToServer sends the daily goals to the backend once.
	// Without a stored token it notifies the user and returns false without
	// any request. Local settings are left untouched.
	SaveLearningGoalToServer(ctx context.Context, newGoal, reviewGoal int) bool

	// FetchLearningGoalFromServer returns the goal stored on the backend.
	FetchLearningGoalFromServer(ctx context.Context) (*models.LearningGoal, error)
}

type settingsService struct {
	store    kv.Store
	api      client.Client
	notifier notify.Notifier
	log      logging.Logger
}

func NewSettingsService(store kv.Store, api client.Client, notifier notify.Notifier, log logging.Logger) SettingsService {
	return &settingsService{
		store:    store,
		api:      api,
		notifier: notifier,
		log:      log.With("service", "settings"),
	}
}

// storedSettings tells missing fields apart from zero values.
type storedSettings struct {
	WordsPerGroup        *int `json:"wordsPerGroup"`
	DailyNewWordsGoal    *int `json:"dailyNewWordsGoal"`
	DailyReviewWordsGoal *int `json:"dailyReviewWordsGoal"`
}

func (s *settingsService) GetSettings(ctx context.Context) models.LearnSettings {
	raw, err := s.store.Get(ctx, kv.KeyLearnSettings)
	if err != nil {
		s.log.Warn(ctx, "failed to read settings, using defaults", "err", err)
		return models.DefaultLearnSettings()
	}
	if raw == nil {
		return models.DefaultLearnSettings()
	}

	var st storedSettings
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.Warn(ctx, "failed to decode settings, using defaults",
			"err", fmt.Errorf("%w: %w", common.ErrStoreRead, err))
		return models.DefaultLearnSettings()
	}
	if st.WordsPerGroup == nil || st.DailyNewWordsGoal == nil || st.DailyReviewWordsGoal == nil {
		s.log.Warn(ctx, "incomplete settings record, using defaults")
		return models.DefaultLearnSettings()
	}

	return models.LearnSettings{
		WordsPerGroup:        *st.WordsPerGroup,
		DailyNewWordsGoal:    *st.DailyNewWordsGoal,
		DailyReviewWordsGoal: *st.DailyReviewWordsGoal,
	}
}

func (s *settingsService) SaveSettings(ctx context.Context, st models.LearnSettings) {
	if err := kv.SetJSON(ctx, s.store, kv.KeyLearnSettings, st); err != nil {
		s.log.Error(ctx, "failed to save settings", "err", err)
	}
}

func (s *settingsService) UpdateWordsPerGroup(ctx context.Context, n int) {
	s.update(ctx, func(st *models.LearnSettings) { st.WordsPerGroup = n })
}

func (s *settingsService) UpdateDailyNewWordsGoal(ctx context.Context, n int) {
	s.update(ctx, func(st *models.LearnSettings) { st.DailyNewWordsGoal = n })
}

func (s *settingsService) UpdateDailyReviewWordsGoal(ctx context.Context, n int) {
	s.update(ctx, func(st *models.LearnSettings) { st.DailyReviewWordsGoal = n })
}

func (s *settingsService) update(ctx context.Context, fn func(*models.LearnSettings)) {
	st := s.GetSettings(ctx)
	fn(&st)
	s.SaveSettings(ctx, st)
}

func (s *settingsService) SaveLearningGoalToServer(ctx context.Context, newGoal, reviewGoal int) bool {
	tok := readToken(ctx, s.store, s.log)
	if tok == "" {
		s.notifier.Notify(ctx, notify.Message{Title: MsgLoginRequired, Icon: notify.IconNone})
		return false
	}

	if err := s.api.SaveLearningGoal(ctx, tok, newGoal, reviewGoal); err != nil {
		s.log.Error(ctx, "failed to save learning goal",
			"token", common.TokenFingerprint(tok),
			"err", fmt.Errorf("%w: %w", common.ErrRemoteSync, err))
		return false
	}

	s.log.Info(ctx, "learning goal saved", "new", newGoal, "review", reviewGoal)
	return true
}

func (s *settingsService) FetchLearningGoalFromServer(ctx context.Context) (*models.LearningGoal, error) {
	tok := readToken(ctx, s.store, s.log)
	if tok == "" {
		return nil, common.ErrNotAuthenticated
	}

	goal, err := s.api.GetLearningGoal(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrRemoteSync, err)
	}
	return goal, nil
}
