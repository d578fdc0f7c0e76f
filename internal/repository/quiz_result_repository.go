package repository

import (
	"context"

	"github.com/mariano/flashdeck/internal/models"
)

// QuizResultRepository persists finished quiz session summaries
type QuizResultRepository interface {
	Insert(ctx context.Context, summary models.QuizSessionSummary) (int64, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]models.QuizSessionSummary, error)
	CountForUser(ctx context.Context, userID int64) (int, error)
}
