package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Dashboard(ctx context.Context, userID int64, now time.Time) (*models.DashboardStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("building dashboard stats: user_id=%d", userID)

	var stats models.DashboardStats
	err := r.db.QueryRowContext(ctx, `
SELECT
    (SELECT COUNT(*) FROM flashcards WHERE user_id = ?),
    (SELECT COUNT(*) FROM decks WHERE user_id = ?),
    (SELECT COUNT(*) FROM quiz_results WHERE user_id = ?),
    (SELECT COALESCE(AVG(100.0 * correct_answers / total_questions), 0)
       FROM quiz_results WHERE user_id = ? AND total_questions > 0),
    (SELECT COUNT(*) FROM user_progress WHERE user_id = ? AND next_review_at <= ?)
`, userID, userID, userID, userID, userID, now).Scan(
		&stats.TotalFlashcards,
		&stats.TotalDecks,
		&stats.QuizzesTaken,
		&stats.AverageScore,
		&stats.CardsDue,
	)
	if err != nil {
		log.Error("failed to build dashboard stats: %v", err)
		return nil, err
	}

	categories, err := r.CategoryCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.Categories = categories
	return &stats, nil
}

func (r *statsRepository) CategoryCounts(ctx context.Context, userID int64) ([]models.CategoryCount, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT category, COUNT(*)
FROM flashcards
WHERE user_id = ? AND category != ''
GROUP BY category
ORDER BY COUNT(*) DESC, category
`, userID)
	if err != nil {
		log.Error("failed to count categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			log.Error("failed to scan category count row: %v", err)
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
