package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

const deckSelect = `
SELECT d.id, d.user_id, d.name, d.description, d.is_public, d.share_token, d.created_at, d.updated_at,
       (SELECT COUNT(*) FROM flashcards f WHERE f.deck_id = d.id) AS card_count
FROM decks d
`

func scanDeck(row interface{ Scan(...any) error }) (models.Deck, error) {
	var d models.Deck
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.IsPublic, &d.ShareToken, &d.CreatedAt, &d.UpdatedAt, &d.CardCount)
	return d, err
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("getting deck: id=%d", id)

	d, err := scanDeck(r.db.QueryRowContext(ctx, deckSelect+`WHERE d.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) GetByShareToken(ctx context.Context, token string) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")

	d, err := scanDeck(r.db.QueryRowContext(ctx, deckSelect+`WHERE d.share_token = ?`, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck by share token: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) List(ctx context.Context, userID int64) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, deckSelect+`WHERE d.user_id = ? ORDER BY d.updated_at DESC`, userID)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()
	return collectDecks(rows, log)
}

func (r *deckRepository) ListPublic(ctx context.Context) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")

	rows, err := r.db.QueryContext(ctx, deckSelect+`WHERE d.is_public = 1 ORDER BY d.updated_at DESC`)
	if err != nil {
		log.Error("failed to list public decks: %v", err)
		return nil, err
	}
	defer rows.Close()
	return collectDecks(rows, log)
}

func collectDecks(rows *sql.Rows, log *logger.Logger) ([]models.Deck, error) {
	var decks []models.Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			log.Error("failed to scan deck row: %v", err)
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *deckRepository) Insert(ctx context.Context, d models.Deck) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: user_id=%d, name=%s", d.UserID, d.Name)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO decks (user_id, name, description, is_public, share_token)
VALUES (?, ?, ?, ?, ?)
`, d.UserID, d.Name, d.Description, d.IsPublic, d.ShareToken)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get deck id: %v", err)
		return 0, err
	}
	log.Debug("deck inserted: id=%d", id)
	return id, nil
}

func (r *deckRepository) Update(ctx context.Context, d models.Deck) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("updating deck: id=%d", d.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE decks
SET name = ?, description = ?, is_public = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, d.Name, d.Description, d.IsPublic, d.ID)
	if err != nil {
		log.Error("failed to update deck: %v", err)
	}
	return err
}

func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete deck: %v", err)
	}
	return err
}
