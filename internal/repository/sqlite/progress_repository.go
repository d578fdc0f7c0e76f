package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func scanProgress(row interface{ Scan(...any) error }) (models.UserProgress, error) {
	var p models.UserProgress
	var deckID sql.NullInt64
	err := row.Scan(&p.ID, &p.UserID, &p.FlashcardID, &deckID, &p.ConfidenceLevel, &p.LastStudiedAt, &p.NextReviewAt)
	p.DeckID = idFromNull(deckID)
	return p, err
}

func (r *progressRepository) Get(ctx context.Context, userID, flashcardID int64) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%d, flashcard_id=%d", userID, flashcardID)

	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, flashcard_id, deck_id, confidence_level, last_studied_at, next_review_at
FROM user_progress
WHERE user_id = ? AND flashcard_id = ?
`, userID, flashcardID)
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, flashcard_id, deck_id, confidence_level, last_studied_at, next_review_at
FROM user_progress
WHERE user_id = ?
ORDER BY next_review_at
`, userID)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var progress []models.UserProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (r *progressRepository) Upsert(ctx context.Context, p models.UserProgress) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user_id=%d, flashcard_id=%d, confidence=%d", p.UserID, p.FlashcardID, p.ConfidenceLevel)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO user_progress (user_id, flashcard_id, deck_id, confidence_level, last_studied_at, next_review_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, flashcard_id) DO UPDATE SET
    deck_id = excluded.deck_id,
    confidence_level = excluded.confidence_level,
    last_studied_at = excluded.last_studied_at,
    next_review_at = excluded.next_review_at
`, p.UserID, p.FlashcardID, nullableID(p.DeckID), p.ConfidenceLevel, p.LastStudiedAt, p.NextReviewAt)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *progressRepository) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM user_progress
WHERE user_id = ? AND next_review_at <= ?
`, userID, now).Scan(&count)
	if err != nil {
		log.Error("failed to count due cards: %v", err)
		return 0, err
	}
	return count, nil
}
