package repository

import (
	"context"

	"github.com/mariano/flashdeck/internal/models"
)

// UserRepository handles user data access
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, username, email, avatar string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
