package jobs

import "github.com/mariano/flashdeck/internal/models"

// JobQueue accepts background persistence work. Implementations must not
// block the caller; dropped work is logged, never surfaced.
type JobQueue interface {
	EnqueueQuizSummary(summary models.QuizSessionSummary)
	EnqueueProgress(record models.UserProgress)
}
