package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type sharingRepository struct {
	db *sql.DB
}

// NewSharingRepository creates a new SharingRepository implementation
func NewSharingRepository(db *sql.DB) repository.SharingRepository {
	return &sharingRepository{db: db}
}

func (r *sharingRepository) InsertShare(ctx context.Context, s models.DeckShare) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("inserting share: deck_id=%d, user_id=%d, permission=%s", s.DeckID, s.SharedWithUserID, s.Permission)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO deck_shares (deck_id, shared_with_user_id, permission)
VALUES (?, ?, ?)
ON CONFLICT(deck_id, shared_with_user_id) DO UPDATE SET permission = excluded.permission
`, s.DeckID, s.SharedWithUserID, s.Permission)
	if err != nil {
		log.Error("failed to insert share: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sharingRepository) ListSharedWithUser(ctx context.Context, userID int64) ([]models.DeckShare, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("listing shares: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, deck_id, shared_with_user_id, permission, created_at
FROM deck_shares
WHERE shared_with_user_id = ?
ORDER BY created_at DESC
`, userID)
	if err != nil {
		log.Error("failed to list shares: %v", err)
		return nil, err
	}
	defer rows.Close()

	var shares []models.DeckShare
	for rows.Next() {
		var s models.DeckShare
		if err := rows.Scan(&s.ID, &s.DeckID, &s.SharedWithUserID, &s.Permission, &s.CreatedAt); err != nil {
			log.Error("failed to scan share row: %v", err)
			return nil, err
		}
		shares = append(shares, s)
	}
	return shares, rows.Err()
}

func (r *sharingRepository) GetShare(ctx context.Context, deckID, userID int64) (*models.DeckShare, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")

	var s models.DeckShare
	err := r.db.QueryRowContext(ctx, `
SELECT id, deck_id, shared_with_user_id, permission, created_at
FROM deck_shares
WHERE deck_id = ? AND shared_with_user_id = ?
`, deckID, userID).Scan(&s.ID, &s.DeckID, &s.SharedWithUserID, &s.Permission, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get share: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *sharingRepository) DeleteShare(ctx context.Context, deckID, userID int64) error {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("deleting share: deck_id=%d, user_id=%d", deckID, userID)

	_, err := r.db.ExecContext(ctx, `
DELETE FROM deck_shares WHERE deck_id = ? AND shared_with_user_id = ?
`, deckID, userID)
	if err != nil {
		log.Error("failed to delete share: %v", err)
	}
	return err
}

func (r *sharingRepository) UpsertCollaborator(ctx context.Context, c models.DeckCollaborator) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("upserting collaborator: deck_id=%d, user_id=%d, role=%s", c.DeckID, c.UserID, c.Role)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO deck_collaborators (deck_id, user_id, role)
VALUES (?, ?, ?)
ON CONFLICT(deck_id, user_id) DO UPDATE SET role = excluded.role
`, c.DeckID, c.UserID, c.Role)
	if err != nil {
		log.Error("failed to upsert collaborator: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sharingRepository) ListCollaborators(ctx context.Context, deckID int64) ([]models.DeckCollaborator, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, deck_id, user_id, role, added_at
FROM deck_collaborators
WHERE deck_id = ?
ORDER BY added_at
`, deckID)
	if err != nil {
		log.Error("failed to list collaborators: %v", err)
		return nil, err
	}
	defer rows.Close()

	var collaborators []models.DeckCollaborator
	for rows.Next() {
		var c models.DeckCollaborator
		if err := rows.Scan(&c.ID, &c.DeckID, &c.UserID, &c.Role, &c.AddedAt); err != nil {
			log.Error("failed to scan collaborator row: %v", err)
			return nil, err
		}
		collaborators = append(collaborators, c)
	}
	return collaborators, rows.Err()
}

func (r *sharingRepository) InsertComment(ctx context.Context, c models.DeckComment) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("inserting comment: deck_id=%d, user_id=%d", c.DeckID, c.UserID)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO deck_comments (deck_id, user_id, content)
VALUES (?, ?, ?)
`, c.DeckID, c.UserID, c.Content)
	if err != nil {
		log.Error("failed to insert comment: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sharingRepository) ListComments(ctx context.Context, deckID int64) ([]models.DeckComment, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT c.id, c.deck_id, c.user_id, u.username, c.content, c.created_at
FROM deck_comments c
JOIN users u ON u.id = c.user_id
WHERE c.deck_id = ?
ORDER BY c.created_at DESC
`, deckID)
	if err != nil {
		log.Error("failed to list comments: %v", err)
		return nil, err
	}
	defer rows.Close()

	var comments []models.DeckComment
	for rows.Next() {
		var c models.DeckComment
		if err := rows.Scan(&c.ID, &c.DeckID, &c.UserID, &c.Username, &c.Content, &c.CreatedAt); err != nil {
			log.Error("failed to scan comment row: %v", err)
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *sharingRepository) UpsertRating(ctx context.Context, rating models.DeckRating) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")
	log.Debug("upserting rating: deck_id=%d, user_id=%d, score=%d", rating.DeckID, rating.UserID, rating.Score)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO deck_ratings (deck_id, user_id, score)
VALUES (?, ?, ?)
ON CONFLICT(deck_id, user_id) DO UPDATE SET score = excluded.score
`, rating.DeckID, rating.UserID, rating.Score)
	if err != nil {
		log.Error("failed to upsert rating: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sharingRepository) RatingSummary(ctx context.Context, deckID int64) (*models.DeckRatingSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("sharing_repo")

	var s models.DeckRatingSummary
	s.DeckID = deckID
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(AVG(score), 0), COUNT(*)
FROM deck_ratings
WHERE deck_id = ?
`, deckID).Scan(&s.Average, &s.Count)
	if err != nil {
		log.Error("failed to get rating summary: %v", err)
		return nil, err
	}
	return &s, nil
}
