package worker

import (
	"context"
	"fmt"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

// SaveQuizSummaryJob persists a finished quiz's summary row.
type SaveQuizSummaryJob struct {
	Results repository.QuizResultRepository
	Summary models.QuizSessionSummary
}

func (j *SaveQuizSummaryJob) Name() string {
	return fmt.Sprintf("save-quiz-summary-%d", j.Summary.UserID)
}

func (j *SaveQuizSummaryJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug("saving quiz summary for user %d (%d/%d correct)",
		j.Summary.UserID, j.Summary.CorrectAnswers, j.Summary.TotalQuestions)

	if _, err := j.Results.Insert(ctx, j.Summary); err != nil {
		return fmt.Errorf("inserting quiz summary: %w", err)
	}
	return nil
}

// SaveProgressJob upserts a per-card spaced repetition record.
type SaveProgressJob struct {
	Progress repository.ProgressRepository
	Record   models.UserProgress
}

func (j *SaveProgressJob) Name() string {
	return fmt.Sprintf("save-progress-%d-%d", j.Record.UserID, j.Record.FlashcardID)
}

func (j *SaveProgressJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug("saving progress for user %d card %d (confidence %d)",
		j.Record.UserID, j.Record.FlashcardID, j.Record.ConfidenceLevel)

	if _, err := j.Progress.Upsert(ctx, j.Record); err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}
