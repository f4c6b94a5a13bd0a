package client

import (
	"context"

	"github.com/dmitrijs2005/wordtrail/internal/client/models"
)

// Client is the subset of the WordTrail backend API used by the client.
// Every call is authenticated with the given bearer token.
type Client interface {
	// SaveLearningGoal stores the daily goals on the server.
	SaveLearningGoal(ctx context.Context, token string, newWords, reviewWords int) error
	GetLearningGoal(ctx context.Context, token string) (*models.LearningGoal, error)
	GetUserDetail(ctx context.Context, token, userID string) (*models.UserDetail, error)
	ListWordbooks(ctx context.Context, token string) ([]models.Lexicon, error)
}
