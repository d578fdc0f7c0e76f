package sqlite

import (
	"context"
	"database/sql"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type quizResultRepository struct {
	db *sql.DB
}

// NewQuizResultRepository creates a new QuizResultRepository implementation
func NewQuizResultRepository(db *sql.DB) repository.QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Insert(ctx context.Context, s models.QuizSessionSummary) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")
	log.Debug("inserting quiz summary: user_id=%d, total=%d, correct=%d", s.UserID, s.TotalQuestions, s.CorrectAnswers)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO quiz_results (user_id, taken_at, category, deck_id, total_questions, correct_answers)
VALUES (?, ?, ?, ?, ?, ?)
`, s.UserID, s.TakenAt, s.Category, nullableID(s.DeckID), s.TotalQuestions, s.CorrectAnswers)
	if err != nil {
		log.Error("failed to insert quiz summary: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get quiz summary id: %v", err)
		return 0, err
	}
	log.Debug("quiz summary inserted: id=%d", id)
	return id, nil
}

func (r *quizResultRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]models.QuizSessionSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")
	log.Debug("listing quiz summaries: user_id=%d", userID)

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, taken_at, category, deck_id, total_questions, correct_answers
FROM quiz_results
WHERE user_id = ?
ORDER BY taken_at DESC
LIMIT ? OFFSET ?
`, userID, limit, offset)
	if err != nil {
		log.Error("failed to list quiz summaries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var summaries []models.QuizSessionSummary
	for rows.Next() {
		var s models.QuizSessionSummary
		var deckID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.UserID, &s.TakenAt, &s.Category, &deckID, &s.TotalQuestions, &s.CorrectAnswers); err != nil {
			log.Error("failed to scan quiz summary row: %v", err)
			return nil, err
		}
		s.DeckID = idFromNull(deckID)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *quizResultRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_result_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_results WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		log.Error("failed to count quiz summaries: %v", err)
		return 0, err
	}
	return count, nil
}
