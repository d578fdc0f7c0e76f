package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/quiz"
)

func twoQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{FlashcardID: 1, Question: "2+2", CorrectAnswer: "4", Options: []string{"4", "5"}},
		{FlashcardID: 2, Question: "3+3", CorrectAnswer: "6", Options: []string{"6", "7"}},
	}
}

func TestSession_FullWalkthrough(t *testing.T) {
	s := quiz.NewSession()
	require.Equal(t, quiz.StateNotStarted, s.State())
	require.NoError(t, s.Start(twoQuestions()))
	require.Equal(t, quiz.StateInProgress, s.State())
	require.Equal(t, 0, s.Index())

	result, err := s.SubmitAnswer("5")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, "5", result.Selected)
	assert.Equal(t, "4", result.CorrectAnswer)

	state, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, quiz.StateInProgress, state)
	assert.Equal(t, 1, s.Index())

	result, err = s.SubmitAnswer("6")
	require.NoError(t, err)
	assert.True(t, result.Correct)

	state, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, quiz.StateFinished, state)

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].FlashcardID)
	assert.Equal(t, int64(2), results[1].FlashcardID)
	assert.Equal(t, 50, quiz.Score(results))
}

func TestSession_StartRejectsEmptyQuestions(t *testing.T) {
	s := quiz.NewSession()
	assert.ErrorIs(t, s.Start(nil), quiz.ErrNoCards)
	assert.Equal(t, quiz.StateNotStarted, s.State())
}

func TestSession_DoubleSubmitIsRejected(t *testing.T) {
	s := quiz.NewSession()
	require.NoError(t, s.Start(twoQuestions()))

	_, err := s.SubmitAnswer("4")
	require.NoError(t, err)

	_, err = s.SubmitAnswer("5")
	assert.ErrorIs(t, err, quiz.ErrAlreadyAnswered)
	assert.Len(t, s.Results(), 1, "second submit must not append a result")
}

func TestSession_SubmitBeforeStart(t *testing.T) {
	s := quiz.NewSession()
	_, err := s.SubmitAnswer("4")
	assert.ErrorIs(t, err, quiz.ErrNoActiveQuestion)

	_, err = s.Current()
	assert.ErrorIs(t, err, quiz.ErrNoActiveQuestion)
}

func TestSession_FinishedIsImmutable(t *testing.T) {
	s := quiz.NewSession()
	require.NoError(t, s.Start(twoQuestions()[:1]))
	_, err := s.SubmitAnswer("4")
	require.NoError(t, err)
	state, err := s.Advance()
	require.NoError(t, err)
	require.Equal(t, quiz.StateFinished, state)

	_, err = s.SubmitAnswer("4")
	assert.ErrorIs(t, err, quiz.ErrNoActiveQuestion)
	_, err = s.Advance()
	assert.ErrorIs(t, err, quiz.ErrNoActiveQuestion)
	assert.Len(t, s.Results(), 1)
}

func TestSession_RestartDiscardsResults(t *testing.T) {
	s := quiz.NewSession()
	require.NoError(t, s.Start(twoQuestions()))
	_, err := s.SubmitAnswer("4")
	require.NoError(t, err)

	require.NoError(t, s.Start(twoQuestions()))
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Results())
	assert.False(t, s.Answered())
}

func TestSession_ResultsReturnsCopy(t *testing.T) {
	s := quiz.NewSession()
	require.NoError(t, s.Start(twoQuestions()))
	_, err := s.SubmitAnswer("4")
	require.NoError(t, err)

	results := s.Results()
	results[0].Selected = "tampered"

	fresh := s.Results()
	assert.Equal(t, "4", fresh[0].Selected)
}

func TestStore_PutGetDelete(t *testing.T) {
	st := quiz.NewStore()

	a := &quiz.Active{ID: "s1", UserID: 10, Session: quiz.NewSession()}
	st.Put(a)

	got, ok := st.Get("s1")
	require.True(t, ok)
	assert.Same(t, a, got)

	st.Delete("s1")
	_, ok = st.Get("s1")
	assert.False(t, ok)
}

func TestStore_DeleteForUser(t *testing.T) {
	st := quiz.NewStore()
	st.Put(&quiz.Active{ID: "s1", UserID: 10, Session: quiz.NewSession()})
	st.Put(&quiz.Active{ID: "s2", UserID: 10, Session: quiz.NewSession()})
	st.Put(&quiz.Active{ID: "s3", UserID: 20, Session: quiz.NewSession()})

	st.DeleteForUser(10)

	assert.Equal(t, 1, st.Len())
	_, ok := st.Get("s3")
	assert.True(t, ok)
}
