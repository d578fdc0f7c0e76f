package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mariano/flashdeck/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueQuizSummary(summary models.QuizSessionSummary) {
	m.Called(summary)
}

func (m *MockJobQueue) EnqueueProgress(record models.UserProgress) {
	m.Called(record)
}
