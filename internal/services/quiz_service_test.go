package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/quiz"
	"github.com/mariano/flashdeck/internal/testutil/mocks"
)

func newTestQuizService(cards *mocks.MockFlashcardRepository, results *mocks.MockQuizResultRepository, queue *mocks.MockJobQueue) *quizService {
	return &quizService{
		cards:   cards,
		results: results,
		store:   quiz.NewStore(),
		queue:   queue,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(42)) },
		newID:   func() string { return "session-1" },
		now:     func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func testPool() []models.Flashcard {
	return []models.Flashcard{
		{ID: 1, UserID: 7, Question: "2+2", Answer: "4", Category: "Math"},
		{ID: 2, UserID: 7, Question: "3*3", Answer: "9", Category: "Math"},
		{ID: 3, UserID: 7, Question: "Capital of France", Answer: "Paris", Category: "Geo"},
		{ID: 4, UserID: 7, Question: "Capital of Peru", Answer: "Lima", Category: "Geo"},
	}
}

func TestQuizService_Start(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	results := new(mocks.MockQuizResultRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestQuizService(cards, results, queue)

	cards.On("List", mock.Anything, models.FlashcardFilter{UserID: 7}).Return(testPool(), nil)

	view, err := svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "session-1", view.SessionID)
	assert.Equal(t, "in_progress", view.State)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, 0, view.Index)
	require.NotNil(t, view.Question)
	assert.NotEmpty(t, view.Question.Options)
	assert.Nil(t, view.Score)
	cards.AssertExpectations(t)
}

func TestQuizService_Start_EmptyPool(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	cards.On("List", mock.Anything, mock.Anything).Return([]models.Flashcard{}, nil)

	_, err := svc.Start(context.Background(), 7, "", nil)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeEmptyPool, appErr.Code)
}

func TestQuizService_Start_CategoryWithNoCards(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)

	_, err := svc.Start(context.Background(), 7, "History", nil)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeEmptyPool, appErr.Code)
}

func TestQuizService_FullRun(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	results := new(mocks.MockQuizResultRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestQuizService(cards, results, queue)

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)
	queue.On("EnqueueQuizSummary", mock.MatchedBy(func(s models.QuizSessionSummary) bool {
		// An unfiltered run is recorded under the "all" category.
		return s.UserID == 7 && s.TotalQuestions == 4 && s.Category == "all"
	})).Return()

	view, err := svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)

	// Answer every question correctly by reading the active session's
	// questions straight from the store.
	active, ok := svc.store.Get(view.SessionID)
	require.True(t, ok)

	for i := 0; i < view.Total; i++ {
		current, err := active.Session.Current()
		require.NoError(t, err)

		answered, err := svc.Answer(context.Background(), view.SessionID, 7, current.CorrectAnswer)
		require.NoError(t, err)
		assert.True(t, answered.Result.Correct)

		next, err := svc.Advance(context.Background(), view.SessionID, 7)
		require.NoError(t, err)
		if i < view.Total-1 {
			assert.Equal(t, "in_progress", next.State)
			assert.Equal(t, i+1, next.Index)
		} else {
			assert.Equal(t, "finished", next.State)
			require.NotNil(t, next.Score)
			assert.Equal(t, 100, *next.Score)
			assert.Len(t, next.Results, 4)
		}
	}

	queue.AssertExpectations(t)
}

func TestQuizService_SummaryKeepsCategoryFilter(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	queue := new(mocks.MockJobQueue)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), queue)

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)
	queue.On("EnqueueQuizSummary", mock.MatchedBy(func(s models.QuizSessionSummary) bool {
		return s.Category == "Math" && s.TotalQuestions == 2
	})).Return()

	view, err := svc.Start(context.Background(), 7, "Math", nil)
	require.NoError(t, err)
	require.Equal(t, 2, view.Total)

	for i := 0; i < view.Total; i++ {
		_, err = svc.Answer(context.Background(), view.SessionID, 7, "nope")
		require.NoError(t, err)
		_, err = svc.Advance(context.Background(), view.SessionID, 7)
		require.NoError(t, err)
	}

	queue.AssertExpectations(t)
}

func TestQuizService_DoubleAnswerRejected(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)

	view, err := svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), view.SessionID, 7, "whatever")
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), view.SessionID, 7, "again")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeProtocol, appErr.Code)
	assert.Equal(t, 409, appErr.Status)
}

func TestQuizService_AnswerWrongUser(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)

	view, err := svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), view.SessionID, 8, "4")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeForbidden, appErr.Code)
}

func TestQuizService_SessionNotFound(t *testing.T) {
	svc := newTestQuizService(new(mocks.MockFlashcardRepository), new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	_, err := svc.Get(context.Background(), "missing", 7)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestQuizService_Retry(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)

	view, err := svc.Start(context.Background(), 7, "Math", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)

	_, err = svc.Answer(context.Background(), view.SessionID, 7, "nope")
	require.NoError(t, err)

	retried, err := svc.Retry(context.Background(), view.SessionID, 7)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", retried.State)
	assert.Equal(t, 0, retried.Index)
	assert.Equal(t, 2, retried.Total)
	assert.False(t, retried.Answered)

	// Prior results are discarded on retry.
	active, ok := svc.store.Get(view.SessionID)
	require.True(t, ok)
	assert.Empty(t, active.Session.Results())
}

func TestQuizService_StartReplacesPreviousSession(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := newTestQuizService(cards, new(mocks.MockQuizResultRepository), new(mocks.MockJobQueue))

	ids := []string{"first", "second"}
	svc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	cards.On("List", mock.Anything, mock.Anything).Return(testPool(), nil)

	_, err := svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)
	_, err = svc.Start(context.Background(), 7, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.store.Len())
	_, ok := svc.store.Get("first")
	assert.False(t, ok)
	_, ok = svc.store.Get("second")
	assert.True(t, ok)
}
