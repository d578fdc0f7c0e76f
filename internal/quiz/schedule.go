package quiz

import (
	"math"
	"time"

	"github.com/mariano/flashdeck/internal/models"
)

// reviewIntervalDays maps a confidence level (1..5) to the number of days
// until the card comes back up for review.
var reviewIntervalDays = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

// defaultIntervalDays is used when the confidence level is out of range.
const defaultIntervalDays = 3

// NextReviewDate schedules the next review relative to now. Levels outside
// 1..5 fall back to the level-2 interval instead of erroring.
func NextReviewDate(confidenceLevel int, now time.Time) time.Time {
	days, ok := reviewIntervalDays[confidenceLevel]
	if !ok {
		days = defaultIntervalDays
	}
	return now.Add(time.Duration(days) * 24 * time.Hour)
}

// Score returns the percentage of correct results, rounded to the nearest
// integer. Callers guarantee a non-empty slice; an empty slice scores 0.
func Score(results []models.QuizResult) int {
	if len(results) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(CountCorrect(results)) / float64(len(results))))
}

// CountCorrect returns the number of correctly answered results.
func CountCorrect(results []models.QuizResult) int {
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	return correct
}
