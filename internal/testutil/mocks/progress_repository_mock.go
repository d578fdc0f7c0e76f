package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mariano/flashdeck/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, flashcardID int64) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, flashcardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress models.UserProgress) (int64, error) {
	args := m.Called(ctx, progress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressRepository) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}
