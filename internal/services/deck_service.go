package services

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

const shareTokenLength = 12

// DeckService handles deck-related business logic
type DeckService interface {
	Get(ctx context.Context, id, userID int64) (*models.Deck, error)
	GetByShareToken(ctx context.Context, token string) (*models.Deck, error)
	List(ctx context.Context, userID int64) ([]models.Deck, error)
	ListPublic(ctx context.Context) ([]models.Deck, error)
	Create(ctx context.Context, deck models.Deck) (*models.Deck, error)
	Update(ctx context.Context, deck models.Deck) (*models.Deck, error)
	Delete(ctx context.Context, id, userID int64) error
	// AssignCardsByCategories moves every card of the user in the given
	// categories into the deck. Returns the number of cards moved.
	AssignCardsByCategories(ctx context.Context, deckID, userID int64, categories []string) (int64, error)
	// RemoveCard detaches a card from its deck without deleting it.
	RemoveCard(ctx context.Context, deckID, cardID, userID int64) error
}

type deckService struct {
	decks repository.DeckRepository
	cards repository.FlashcardRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository, cards repository.FlashcardRepository) DeckService {
	return &deckService{decks: decks, cards: cards}
}

func (s *deckService) Get(ctx context.Context, id, userID int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	if deck.UserID != userID && !deck.IsPublic {
		return nil, errors.NewForbiddenError("deck is private")
	}
	return deck, nil
}

func (s *deckService) GetByShareToken(ctx context.Context, token string) (*models.Deck, error) {
	deck, err := s.decks.GetByShareToken(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck by share token: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", token)
	}
	return deck, nil
}

func (s *deckService) List(ctx context.Context, userID int64) ([]models.Deck, error) {
	decks, err := s.decks.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) ListPublic(ctx context.Context) ([]models.Deck, error) {
	decks, err := s.decks.ListPublic(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list public decks: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) Create(ctx context.Context, deck models.Deck) (*models.Deck, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(deck.Name) == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	token, err := gonanoid.New(shareTokenLength)
	if err != nil {
		log.Error("failed to generate share token: %v", err)
		return nil, errors.NewInternalError(err)
	}
	deck.ShareToken = token

	id, err := s.decks.Insert(ctx, deck)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("created deck %d for user %d", id, deck.UserID)
	return s.decks.Get(ctx, id)
}

func (s *deckService) Update(ctx context.Context, deck models.Deck) (*models.Deck, error) {
	existing, err := s.ownedDeck(ctx, deck.ID, deck.UserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(deck.Name) == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}
	deck.ShareToken = existing.ShareToken
	if err := s.decks.Update(ctx, deck); err != nil {
		logger.FromContext(ctx).Error("failed to update deck %d: %v", deck.ID, err)
		return nil, errors.NewInternalError(err)
	}
	return s.decks.Get(ctx, deck.ID)
}

func (s *deckService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.ownedDeck(ctx, id, userID); err != nil {
		return err
	}
	if err := s.decks.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error("failed to delete deck %d: %v", id, err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *deckService) AssignCardsByCategories(ctx context.Context, deckID, userID int64, categories []string) (int64, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ownedDeck(ctx, deckID, userID); err != nil {
		return 0, err
	}
	if len(categories) == 0 {
		return 0, errors.NewValidationError("categories", "must not be empty")
	}

	moved, err := s.cards.AssignDeckByCategories(ctx, deckID, userID, categories)
	if err != nil {
		log.Error("failed to assign cards to deck %d: %v", deckID, err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("assigned %d cards to deck %d", moved, deckID)
	return moved, nil
}

func (s *deckService) RemoveCard(ctx context.Context, deckID, cardID, userID int64) error {
	if _, err := s.ownedDeck(ctx, deckID, userID); err != nil {
		return err
	}

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get flashcard %d: %v", cardID, err)
		return errors.NewInternalError(err)
	}
	if card == nil {
		return errors.NewNotFoundError("flashcard", cardID)
	}
	if card.DeckID == nil || *card.DeckID != deckID {
		return errors.NewBadRequestError("flashcard is not in this deck")
	}

	if err := s.cards.ClearDeck(ctx, cardID); err != nil {
		logger.FromContext(ctx).Error("failed to clear deck for flashcard %d: %v", cardID, err)
		return errors.NewInternalError(err)
	}
	return nil
}

// ownedDeck loads a deck and requires the caller to be its owner. Public
// visibility is not enough to modify a deck.
func (s *deckService) ownedDeck(ctx context.Context, id, userID int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	if deck.UserID != userID {
		return nil, errors.NewForbiddenError("deck belongs to another user")
	}
	return deck, nil
}
