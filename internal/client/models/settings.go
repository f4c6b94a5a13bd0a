package models

// LearnSettings are the learner's pacing preferences.
type LearnSettings struct {
	WordsPerGroup        int `json:"wordsPerGroup"`
	DailyNewWordsGoal    int `json:"dailyNewWordsGoal"`
	DailyReviewWordsGoal int `json:"dailyReviewWordsGoal"`
}

// DefaultLearnSettings returns the settings used when nothing complete is stored.
func DefaultLearnSettings() LearnSettings {
	return LearnSettings{
		WordsPerGroup:        10,
		DailyNewWordsGoal:    20,
		DailyReviewWordsGoal: 30,
	}
}

// LearningGoal is the daily goal record kept by the backend.
type LearningGoal struct {
	ID                   string `json:"id,omitempty"`
	UserID               string `json:"userId,omitempty"`
	DailyNewWordsGoal    int    `json:"dailyNewWordsGoal"`
	DailyReviewWordsGoal int    `json:"dailyReviewWordsGoal"`
	CreatedAt            string `json:"createdAt,omitempty"`
	UpdatedAt            string `json:"updatedAt,omitempty"`
}
