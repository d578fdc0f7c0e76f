package quiz

import (
	"errors"
	"math/rand"

	"github.com/mariano/flashdeck/internal/models"
)

// ErrNoCards is returned when no flashcards match the requested filter.
var ErrNoCards = errors.New("no cards available")

// BuildSession assembles an ordered question list from pool. When
// categoryFilter is non-empty only matching cards become questions, but
// distractors are always drawn from the full pool, so wrong answers may come
// from other categories. Question order is reshuffled on every call.
func BuildSession(r *rand.Rand, pool []models.Flashcard, categoryFilter string) ([]models.QuizQuestion, error) {
	filtered := pool
	if categoryFilter != "" {
		filtered = make([]models.Flashcard, 0, len(pool))
		for _, card := range pool {
			if card.Category == categoryFilter {
				filtered = append(filtered, card)
			}
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNoCards
	}

	questions := make([]models.QuizQuestion, 0, len(filtered))
	for _, card := range Shuffle(r, filtered) {
		questions = append(questions, models.QuizQuestion{
			FlashcardID:   card.ID,
			Question:      card.Question,
			CorrectAnswer: card.Answer,
			Options:       GenerateOptions(r, card.Answer, pool),
			Category:      card.Category,
		})
	}
	return questions, nil
}
