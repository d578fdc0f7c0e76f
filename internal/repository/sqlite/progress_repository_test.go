package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
	"github.com/mariano/flashdeck/internal/repository/sqlite"
	"github.com/mariano/flashdeck/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db    *sql.DB
	repo  repository.ProgressRepository
	cards repository.FlashcardRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
	s.cards = sqlite.NewFlashcardRepository(s.db)
}

func (s *ProgressRepositorySuite) setupUserAndCard() (int64, int64) {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, "alice")
	s.Require().NoError(err)

	var userID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, "alice").Scan(&userID)
	s.Require().NoError(err)

	cardID, err := s.cards.Insert(ctx, models.Flashcard{
		UserID:   userID,
		Question: "2+2",
		Answer:   "4",
		Category: "Math",
	})
	s.Require().NoError(err)
	return userID, cardID
}

func (s *ProgressRepositorySuite) TestUpsert_InsertThenUpdate() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.repo.Upsert(ctx, models.UserProgress{
		UserID:          userID,
		FlashcardID:     cardID,
		ConfidenceLevel: 2,
		LastStudiedAt:   now,
		NextReviewAt:    now.Add(3 * 24 * time.Hour),
	})
	s.Require().NoError(err)

	// Upserting again for the same (user, card) pair must update in place.
	later := now.Add(24 * time.Hour)
	_, err = s.repo.Upsert(ctx, models.UserProgress{
		UserID:          userID,
		FlashcardID:     cardID,
		ConfidenceLevel: 5,
		LastStudiedAt:   later,
		NextReviewAt:    later.Add(30 * 24 * time.Hour),
	})
	s.Require().NoError(err)

	progress, err := s.repo.Get(ctx, userID, cardID)
	s.Require().NoError(err)
	s.Require().NotNil(progress)
	s.Assert().Equal(5, progress.ConfidenceLevel)

	all, err := s.repo.ListForUser(ctx, userID)
	s.Require().NoError(err)
	s.Assert().Len(all, 1, "upsert must not create a second row")
}

func (s *ProgressRepositorySuite) TestGet_NotFound() {
	userID, _ := s.setupUserAndCard()

	progress, err := s.repo.Get(context.Background(), userID, 9999)
	s.Require().NoError(err)
	s.Assert().Nil(progress)
}

func (s *ProgressRepositorySuite) TestCountDue() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.repo.Upsert(ctx, models.UserProgress{
		UserID:          userID,
		FlashcardID:     cardID,
		ConfidenceLevel: 1,
		LastStudiedAt:   now.Add(-48 * time.Hour),
		NextReviewAt:    now.Add(-24 * time.Hour),
	})
	s.Require().NoError(err)

	due, err := s.repo.CountDue(ctx, userID, now)
	s.Require().NoError(err)
	s.Assert().Equal(1, due)

	due, err = s.repo.CountDue(ctx, userID, now.Add(-72*time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(0, due)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}

type QuizResultRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.QuizResultRepository
}

func (s *QuizResultRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewQuizResultRepository(s.db)
}

func (s *QuizResultRepositorySuite) TestInsertAndList() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, "alice")
	s.Require().NoError(err)

	var userID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, "alice").Scan(&userID)
	s.Require().NoError(err)

	first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	_, err = s.repo.Insert(ctx, models.QuizSessionSummary{
		UserID: userID, TakenAt: first, Category: "Math", TotalQuestions: 5, CorrectAnswers: 3,
	})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.QuizSessionSummary{
		UserID: userID, TakenAt: second, Category: "all", TotalQuestions: 10, CorrectAnswers: 10,
	})
	s.Require().NoError(err)

	summaries, err := s.repo.ListForUser(ctx, userID, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Assert().Equal("all", summaries[0].Category, "most recent first")
	s.Assert().Equal("Math", summaries[1].Category)

	count, err := s.repo.CountForUser(ctx, userID)
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func (s *QuizResultRepositorySuite) TestInsert_RejectsImpossibleScore() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, "alice")
	s.Require().NoError(err)

	var userID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, "alice").Scan(&userID)
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, models.QuizSessionSummary{
		UserID: userID, TakenAt: time.Now(), Category: "all", TotalQuestions: 3, CorrectAnswers: 4,
	})
	s.Assert().Error(err, "correct_answers > total_questions violates the table check")
}

func TestQuizResultRepositorySuite(t *testing.T) {
	suite.Run(t, new(QuizResultRepositorySuite))
}
