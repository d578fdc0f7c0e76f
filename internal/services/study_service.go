package services

import (
	"context"
	"time"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/jobs"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/quiz"
	"github.com/mariano/flashdeck/internal/repository"
)

// StudyService tracks per-card study confidence and review scheduling
type StudyService interface {
	// RecordConfidence stores a confidence rating for a card and returns the
	// resulting progress record with its next review date.
	RecordConfidence(ctx context.Context, userID, flashcardID int64, level int) (*models.UserProgress, error)
	Progress(ctx context.Context, userID int64) ([]models.UserProgress, error)
	DueCount(ctx context.Context, userID int64) (int, error)
}

type studyService struct {
	cards    repository.FlashcardRepository
	progress repository.ProgressRepository
	queue    jobs.JobQueue

	now func() time.Time
}

// NewStudyService creates a new StudyService
func NewStudyService(cards repository.FlashcardRepository, progress repository.ProgressRepository, queue jobs.JobQueue) StudyService {
	return &studyService{
		cards:    cards,
		progress: progress,
		queue:    queue,
		now:      time.Now,
	}
}

func (s *studyService) RecordConfidence(ctx context.Context, userID, flashcardID int64, level int) (*models.UserProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording confidence: user_id=%d, flashcard_id=%d, level=%d", userID, flashcardID, level)

	card, err := s.cards.Get(ctx, flashcardID)
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", flashcardID)
	}
	if card.UserID != userID {
		return nil, errors.NewForbiddenError("flashcard belongs to another user")
	}

	now := s.now()
	record := models.UserProgress{
		UserID:          userID,
		FlashcardID:     flashcardID,
		DeckID:          card.DeckID,
		ConfidenceLevel: level,
		LastStudiedAt:   now,
		NextReviewAt:    quiz.NextReviewDate(level, now),
	}

	// Fire-and-forget: the caller gets the schedule immediately.
	s.queue.EnqueueProgress(record)

	return &record, nil
}

func (s *studyService) Progress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	records, err := s.progress.ListForUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}

func (s *studyService) DueCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.progress.CountDue(ctx, userID, s.now())
	if err != nil {
		logger.FromContext(ctx).Error("failed to count due cards: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return count, nil
}
