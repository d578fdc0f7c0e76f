package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

const flashcardColumns = "id, user_id, question, answer, category, deck_id, created_at, updated_at"

func scanFlashcard(row interface{ Scan(...any) error }) (models.Flashcard, error) {
	var c models.Flashcard
	var deckID sql.NullInt64
	err := row.Scan(&c.ID, &c.UserID, &c.Question, &c.Answer, &c.Category, &deckID, &c.CreatedAt, &c.UpdatedAt)
	c.DeckID = idFromNull(deckID)
	return c, err
}

func (r *flashcardRepository) Get(ctx context.Context, id int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("getting flashcard: id=%d", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+flashcardColumns+`
FROM flashcards
WHERE id = ?
`, id)
	c, err := scanFlashcard(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) listQuery(filter models.FlashcardFilter) squirrel.SelectBuilder {
	query := sqlBuilder.Select(
		"id", "user_id", "question", "answer", "category", "deck_id", "created_at", "updated_at",
	).From("flashcards")

	// Dynamic WHERE clauses
	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.DeckID != nil {
		query = query.Where(squirrel.Eq{"deck_id": *filter.DeckID})
	}
	return query
}

func (r *flashcardRepository) List(ctx context.Context, filter models.FlashcardFilter) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("listing flashcards: user_id=%d, category=%s", filter.UserID, filter.Category)

	query := r.listQuery(filter)

	// Safe ORDER BY with validation
	orderBy := "created_at"
	if filter.OrderBy == "updated_at" || filter.OrderBy == "category" {
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) Count(ctx context.Context, filter models.FlashcardFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	query := sqlBuilder.Select("COUNT(*)").From("flashcards")
	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.DeckID != nil {
		query = query.Where(squirrel.Eq{"deck_id": *filter.DeckID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count flashcards: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting flashcard: user_id=%d, category=%s", c.UserID, c.Category)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO flashcards (user_id, question, answer, category, deck_id)
VALUES (?, ?, ?, ?, ?)
`, c.UserID, c.Question, c.Answer, c.Category, nullableID(c.DeckID))
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return 0, err
	}
	log.Debug("flashcard inserted: id=%d", id)
	return id, nil
}

func (r *flashcardRepository) Update(ctx context.Context, c models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating flashcard: id=%d", c.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET question = ?, answer = ?, category = ?, deck_id = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, c.Question, c.Answer, c.Category, nullableID(c.DeckID), c.ID)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("deleting flashcard: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) ClearDeck(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("clearing deck association: flashcard_id=%d", id)

	_, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET deck_id = NULL, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, id)
	if err != nil {
		log.Error("failed to clear deck association: %v", err)
	}
	return err
}

func (r *flashcardRepository) AssignDeckByCategories(ctx context.Context, deckID, userID int64, categories []string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("assigning cards to deck by category: deck_id=%d, categories=%v", deckID, categories)

	if len(categories) == 0 {
		return 0, nil
	}

	query := sqlBuilder.Update("flashcards").
		Set("deck_id", deckID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"category": categories})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to assign cards to deck: %v", err)
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	log.Debug("assigned %d cards to deck %d", moved, deckID)
	return moved, nil
}

func (r *flashcardRepository) Categories(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT category
FROM flashcards
WHERE user_id = ? AND category != ''
ORDER BY category
`, userID)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			log.Error("failed to scan category row: %v", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
