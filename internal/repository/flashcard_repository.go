package repository

import (
	"context"

	"github.com/mariano/flashdeck/internal/models"
)

// FlashcardRepository handles flashcard data access
type FlashcardRepository interface {
	Get(ctx context.Context, id int64) (*models.Flashcard, error)
	List(ctx context.Context, filter models.FlashcardFilter) ([]models.Flashcard, error)
	Count(ctx context.Context, filter models.FlashcardFilter) (int, error)
	Insert(ctx context.Context, card models.Flashcard) (int64, error)
	Update(ctx context.Context, card models.Flashcard) error
	Delete(ctx context.Context, id int64) error
	// ClearDeck detaches the card from its deck without deleting the card.
	ClearDeck(ctx context.Context, id int64) error
	// AssignDeckByCategories attaches every card of the user whose category is
	// in categories to the given deck. Returns the number of cards moved.
	AssignDeckByCategories(ctx context.Context, deckID, userID int64, categories []string) (int64, error)
	Categories(ctx context.Context, userID int64) ([]string, error)
}
