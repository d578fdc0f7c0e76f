package repository

import (
	"context"
	"time"

	"github.com/mariano/flashdeck/internal/models"
)

// StatsRepository handles dashboard aggregates
type StatsRepository interface {
	Dashboard(ctx context.Context, userID int64, now time.Time) (*models.DashboardStats, error)
	CategoryCounts(ctx context.Context, userID int64) ([]models.CategoryCount, error)
}
