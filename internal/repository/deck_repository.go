package repository

import (
	"context"

	"github.com/mariano/flashdeck/internal/models"
)

// DeckRepository handles deck data access
type DeckRepository interface {
	Get(ctx context.Context, id int64) (*models.Deck, error)
	GetByShareToken(ctx context.Context, token string) (*models.Deck, error)
	List(ctx context.Context, userID int64) ([]models.Deck, error)
	ListPublic(ctx context.Context) ([]models.Deck, error)
	Insert(ctx context.Context, deck models.Deck) (int64, error)
	Update(ctx context.Context, deck models.Deck) error
	Delete(ctx context.Context, id int64) error
}
