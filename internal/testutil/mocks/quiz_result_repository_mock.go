package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mariano/flashdeck/internal/models"
)

// MockQuizResultRepository is a mock implementation of repository.QuizResultRepository
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) Insert(ctx context.Context, summary models.QuizSessionSummary) (int64, error) {
	args := m.Called(ctx, summary)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizResultRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]models.QuizSessionSummary, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizSessionSummary), args.Error(1)
}

func (m *MockQuizResultRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
