package quiz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/quiz"
)

func TestNextReviewDate_Intervals(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		level    int
		wantDays int
	}{
		{level: 1, wantDays: 1},
		{level: 2, wantDays: 3},
		{level: 3, wantDays: 7},
		{level: 4, wantDays: 14},
		{level: 5, wantDays: 30},
	}
	for _, tc := range tests {
		got := quiz.NextReviewDate(tc.level, now)
		want := now.Add(time.Duration(tc.wantDays) * 24 * time.Hour)
		assert.Equal(t, want, got, "level %d", tc.level)
	}
}

func TestNextReviewDate_OneDayOffset(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := quiz.NextReviewDate(1, now)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestNextReviewDate_OutOfRangeFallsBackToThreeDays(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, quiz.NextReviewDate(2, now), quiz.NextReviewDate(99, now))
	assert.Equal(t, quiz.NextReviewDate(2, now), quiz.NextReviewDate(0, now))
	assert.Equal(t, quiz.NextReviewDate(2, now), quiz.NextReviewDate(-1, now))
}

func TestScore(t *testing.T) {
	results := func(correct, wrong int) []models.QuizResult {
		var out []models.QuizResult
		for i := 0; i < correct; i++ {
			out = append(out, models.QuizResult{Correct: true})
		}
		for i := 0; i < wrong; i++ {
			out = append(out, models.QuizResult{Correct: false})
		}
		return out
	}

	assert.Equal(t, 100, quiz.Score(results(3, 0)))
	assert.Equal(t, 0, quiz.Score(results(0, 3)))
	assert.Equal(t, 50, quiz.Score(results(1, 1)))
	assert.Equal(t, 67, quiz.Score(results(2, 1)), "2/3 rounds to 67")
	assert.Equal(t, 33, quiz.Score(results(1, 2)), "1/3 rounds to 33")
	assert.Equal(t, 0, quiz.Score(nil))
}

func TestCountCorrect(t *testing.T) {
	results := []models.QuizResult{
		{Correct: true},
		{Correct: false},
		{Correct: true},
	}
	assert.Equal(t, 2, quiz.CountCorrect(results))
}
