package services

import (
	"context"
	"strings"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

// FlashcardService handles flashcard-related business logic
type FlashcardService interface {
	Get(ctx context.Context, id, userID int64) (*models.Flashcard, error)
	List(ctx context.Context, filter models.FlashcardFilter) ([]models.Flashcard, int, error)
	Create(ctx context.Context, card models.Flashcard) (*models.Flashcard, error)
	Update(ctx context.Context, card models.Flashcard) (*models.Flashcard, error)
	Delete(ctx context.Context, id, userID int64) error
	Categories(ctx context.Context, userID int64) ([]string, error)
}

type flashcardService struct {
	cards repository.FlashcardRepository
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(cards repository.FlashcardRepository) FlashcardService {
	return &flashcardService{cards: cards}
}

func (s *flashcardService) Get(ctx context.Context, id, userID int64) (*models.Flashcard, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get flashcard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", id)
	}
	if card.UserID != userID {
		return nil, errors.NewForbiddenError("flashcard belongs to another user")
	}
	return card, nil
}

func (s *flashcardService) List(ctx context.Context, filter models.FlashcardFilter) ([]models.Flashcard, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing flashcards: user_id=%d, category=%q", filter.UserID, filter.Category)

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.cards.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count flashcards: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	return cards, total, nil
}

func (s *flashcardService) Create(ctx context.Context, card models.Flashcard) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if err := validateCard(card); err != nil {
		return nil, err
	}
	card.Question = strings.TrimSpace(card.Question)
	card.Answer = strings.TrimSpace(card.Answer)
	card.Category = strings.TrimSpace(card.Category)

	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("created flashcard %d for user %d", id, card.UserID)
	return s.cards.Get(ctx, id)
}

func (s *flashcardService) Update(ctx context.Context, card models.Flashcard) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)

	existing, err := s.Get(ctx, card.ID, card.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateCard(card); err != nil {
		return nil, err
	}
	card.DeckID = existing.DeckID
	if err := s.cards.Update(ctx, card); err != nil {
		log.Error("failed to update flashcard %d: %v", card.ID, err)
		return nil, errors.NewInternalError(err)
	}
	return s.cards.Get(ctx, card.ID)
}

func (s *flashcardService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error("failed to delete flashcard %d: %v", id, err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *flashcardService) Categories(ctx context.Context, userID int64) ([]string, error) {
	categories, err := s.cards.Categories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list categories: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return categories, nil
}

func validateCard(card models.Flashcard) error {
	if strings.TrimSpace(card.Question) == "" {
		return errors.NewValidationError("question", "must not be empty")
	}
	if strings.TrimSpace(card.Answer) == "" {
		return errors.NewValidationError("answer", "must not be empty")
	}
	return nil
}
