package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mariano/flashdeck/internal/models"
)

// MockSharingRepository is a mock implementation of repository.SharingRepository
type MockSharingRepository struct {
	mock.Mock
}

func (m *MockSharingRepository) InsertShare(ctx context.Context, share models.DeckShare) (int64, error) {
	args := m.Called(ctx, share)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSharingRepository) ListSharedWithUser(ctx context.Context, userID int64) ([]models.DeckShare, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeckShare), args.Error(1)
}

func (m *MockSharingRepository) GetShare(ctx context.Context, deckID, userID int64) (*models.DeckShare, error) {
	args := m.Called(ctx, deckID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeckShare), args.Error(1)
}

func (m *MockSharingRepository) DeleteShare(ctx context.Context, deckID, userID int64) error {
	args := m.Called(ctx, deckID, userID)
	return args.Error(0)
}

func (m *MockSharingRepository) UpsertCollaborator(ctx context.Context, collab models.DeckCollaborator) (int64, error) {
	args := m.Called(ctx, collab)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSharingRepository) ListCollaborators(ctx context.Context, deckID int64) ([]models.DeckCollaborator, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeckCollaborator), args.Error(1)
}

func (m *MockSharingRepository) InsertComment(ctx context.Context, comment models.DeckComment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSharingRepository) ListComments(ctx context.Context, deckID int64) ([]models.DeckComment, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DeckComment), args.Error(1)
}

func (m *MockSharingRepository) UpsertRating(ctx context.Context, rating models.DeckRating) (int64, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSharingRepository) RatingSummary(ctx context.Context, deckID int64) (*models.DeckRatingSummary, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeckRatingSummary), args.Error(1)
}
