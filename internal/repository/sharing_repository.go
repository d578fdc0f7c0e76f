package repository

import (
	"context"

	"github.com/mariano/flashdeck/internal/models"
)

// SharingRepository handles deck sharing, collaborators, comments and ratings
type SharingRepository interface {
	InsertShare(ctx context.Context, share models.DeckShare) (int64, error)
	ListSharedWithUser(ctx context.Context, userID int64) ([]models.DeckShare, error)
	GetShare(ctx context.Context, deckID, userID int64) (*models.DeckShare, error)
	DeleteShare(ctx context.Context, deckID, userID int64) error

	UpsertCollaborator(ctx context.Context, collab models.DeckCollaborator) (int64, error)
	ListCollaborators(ctx context.Context, deckID int64) ([]models.DeckCollaborator, error)

	InsertComment(ctx context.Context, comment models.DeckComment) (int64, error)
	ListComments(ctx context.Context, deckID int64) ([]models.DeckComment, error)

	UpsertRating(ctx context.Context, rating models.DeckRating) (int64, error)
	RatingSummary(ctx context.Context, deckID int64) (*models.DeckRatingSummary, error)
}
