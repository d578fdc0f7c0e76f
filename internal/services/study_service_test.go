package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/testutil/mocks"
)

func newTestStudyService(cards *mocks.MockFlashcardRepository, progress *mocks.MockProgressRepository, queue *mocks.MockJobQueue) *studyService {
	return &studyService{
		cards:    cards,
		progress: progress,
		queue:    queue,
		now:      func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestStudyService_RecordConfidence(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	progress := new(mocks.MockProgressRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestStudyService(cards, progress, queue)

	deckID := int64(3)
	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 7, DeckID: &deckID}, nil)
	queue.On("EnqueueProgress", mock.MatchedBy(func(p models.UserProgress) bool {
		return p.UserID == 7 && p.FlashcardID == 10 && p.ConfidenceLevel == 3
	})).Return()

	record, err := svc.RecordConfidence(context.Background(), 7, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), record.NextReviewAt, "level 3 schedules 7 days out")
	require.NotNil(t, record.DeckID)
	assert.Equal(t, deckID, *record.DeckID)
	queue.AssertExpectations(t)
}

func TestStudyService_RecordConfidence_OutOfRangeLevel(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	progress := new(mocks.MockProgressRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestStudyService(cards, progress, queue)

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 7}, nil)
	queue.On("EnqueueProgress", mock.Anything).Return()

	record, err := svc.RecordConfidence(context.Background(), 7, 10, 99)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), record.NextReviewAt, "unknown level falls back to 3 days")
}

func TestStudyService_RecordConfidence_MissingCard(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestStudyService(cards, new(mocks.MockProgressRepository), queue)

	cards.On("Get", mock.Anything, int64(10)).Return(nil, nil)

	record, err := svc.RecordConfidence(context.Background(), 7, 10, 3)
	require.Error(t, err)
	assert.Nil(t, record)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	queue.AssertNotCalled(t, "EnqueueProgress", mock.Anything)
}

func TestStudyService_RecordConfidence_WrongUser(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestStudyService(cards, new(mocks.MockProgressRepository), new(mocks.MockJobQueue))

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 99}, nil)

	_, err := svc.RecordConfidence(context.Background(), 7, 10, 3)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeForbidden, appErr.Code)
}

func TestStudyService_DueCount(t *testing.T) {
	progress := new(mocks.MockProgressRepository)
	svc := newTestStudyService(new(mocks.MockFlashcardRepository), progress, new(mocks.MockJobQueue))

	progress.On("CountDue", mock.Anything, int64(7), mock.Anything).Return(5, nil)

	count, err := svc.DueCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
