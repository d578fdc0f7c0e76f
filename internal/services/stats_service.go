package services

import (
	"context"
	"time"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

// StatsService handles dashboard aggregates
type StatsService interface {
	Dashboard(ctx context.Context, userID int64) (*models.DashboardStats, error)
}

type statsService struct {
	stats repository.StatsRepository

	now func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats, now: time.Now}
}

func (s *statsService) Dashboard(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("building dashboard: user_id=%d", userID)

	dashboard, err := s.stats.Dashboard(ctx, userID, s.now())
	if err != nil {
		log.Error("failed to build dashboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return dashboard, nil
}
