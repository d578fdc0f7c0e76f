package repository

import (
	"context"
	"time"

	"github.com/mariano/flashdeck/internal/models"
)

// ProgressRepository handles per-(user, flashcard) study progress
type ProgressRepository interface {
	Get(ctx context.Context, userID, flashcardID int64) (*models.UserProgress, error)
	ListForUser(ctx context.Context, userID int64) ([]models.UserProgress, error)
	Upsert(ctx context.Context, progress models.UserProgress) (int64, error)
	CountDue(ctx context.Context, userID int64, now time.Time) (int, error)
}
