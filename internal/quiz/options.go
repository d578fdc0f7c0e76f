package quiz

import (
	"math/rand"

	"github.com/mariano/flashdeck/internal/models"
)

const maxDistractors = 3

// GenerateOptions builds the shuffled option list for one question: the
// correct answer plus up to three distractors drawn from the answers of the
// other cards in pool.
//
// Candidates are not deduplicated before the draw, so an answer repeated
// across many cards is proportionally more likely to be picked as a
// distractor. The emitted list still contains each option value at most once,
// and always contains correctAnswer exactly once. With fewer than three
// distinct wrong answers in the pool the list is shorter than four entries.
func GenerateOptions(r *rand.Rand, correctAnswer string, pool []models.Flashcard) []string {
	candidates := make([]string, 0, len(pool))
	for _, card := range pool {
		if card.Answer != correctAnswer {
			candidates = append(candidates, card.Answer)
		}
	}

	options := []string{correctAnswer}
	seen := map[string]struct{}{correctAnswer: {}}
	for _, answer := range Shuffle(r, candidates) {
		if len(options) == maxDistractors+1 {
			break
		}
		if _, dup := seen[answer]; dup {
			continue
		}
		seen[answer] = struct{}{}
		options = append(options, answer)
	}

	return Shuffle(r, options)
}
