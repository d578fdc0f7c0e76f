package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/jobs"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/quiz"
	"github.com/mariano/flashdeck/internal/repository"
)

// QuizQuestionView is the client-facing shape of a question. The correct
// answer is withheld until the question is answered.
type QuizQuestionView struct {
	FlashcardID int64    `json:"flashcard_id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Category    string   `json:"category"`
}

// QuizView is a snapshot of a session returned after every quiz call.
type QuizView struct {
	SessionID string              `json:"session_id"`
	State     string              `json:"state"`
	Index     int                 `json:"index"`
	Total     int                 `json:"total"`
	Answered  bool                `json:"answered"`
	Question  *QuizQuestionView   `json:"question,omitempty"`
	Score     *int                `json:"score,omitempty"`
	Results   []models.QuizResult `json:"results,omitempty"`
}

// AnswerView pairs the graded result with the updated session snapshot.
type AnswerView struct {
	Result models.QuizResult `json:"result"`
	View   QuizView          `json:"session"`
}

// QuizService runs quiz sessions: building them from the user's flashcards,
// stepping through answers, and persisting a summary once finished.
type QuizService interface {
	Start(ctx context.Context, userID int64, category string, deckID *int64) (*QuizView, error)
	Answer(ctx context.Context, sessionID string, userID int64, selected string) (*AnswerView, error)
	Advance(ctx context.Context, sessionID string, userID int64) (*QuizView, error)
	// Retry rebuilds the session from the same card pool with fresh ordering
	// and fresh distractors, discarding all recorded results.
	Retry(ctx context.Context, sessionID string, userID int64) (*QuizView, error)
	Get(ctx context.Context, sessionID string, userID int64) (*QuizView, error)
	History(ctx context.Context, userID int64, limit, offset int) ([]models.QuizSessionSummary, int, error)
}

type quizService struct {
	cards   repository.FlashcardRepository
	results repository.QuizResultRepository
	store   *quiz.Store
	queue   jobs.JobQueue

	newRand func() *rand.Rand
	newID   func() string
	now     func() time.Time
}

// NewQuizService creates a new QuizService
func NewQuizService(cards repository.FlashcardRepository, results repository.QuizResultRepository, store *quiz.Store, queue jobs.JobQueue) QuizService {
	return &quizService{
		cards:   cards,
		results: results,
		store:   store,
		queue:   queue,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (s *quizService) Start(ctx context.Context, userID int64, category string, deckID *int64) (*QuizView, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting quiz: user_id=%d, category=%q", userID, category)

	pool, err := s.cards.List(ctx, models.FlashcardFilter{UserID: userID, DeckID: deckID})
	if err != nil {
		log.Error("failed to load card pool: %v", err)
		return nil, errors.NewInternalError(err)
	}

	questions, err := quiz.BuildSession(s.newRand(), pool, category)
	if err != nil {
		return nil, errors.NewEmptyPoolError("no flashcards available for this quiz")
	}

	session := quiz.NewSession()
	if err := session.Start(questions); err != nil {
		return nil, errors.NewEmptyPoolError("no flashcards available for this quiz")
	}

	// One active quiz per user; stale sessions are dropped.
	s.store.DeleteForUser(userID)

	active := &quiz.Active{
		ID:        s.newID(),
		UserID:    userID,
		Category:  category,
		DeckID:    deckID,
		Pool:      pool,
		Session:   session,
		CreatedAt: s.now(),
	}
	s.store.Put(active)

	log.Info("quiz started: session=%s, questions=%d", active.ID, session.Total())
	view := snapshot(active)
	return &view, nil
}

func (s *quizService) Answer(ctx context.Context, sessionID string, userID int64, selected string) (*AnswerView, error) {
	active, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	active.Lock()
	defer active.Unlock()

	result, err := active.Session.SubmitAnswer(selected)
	if err != nil {
		return nil, protocolError(err)
	}

	logger.FromContext(ctx).Debug("answer recorded: session=%s, correct=%t", sessionID, result.Correct)
	return &AnswerView{Result: result, View: snapshot(active)}, nil
}

func (s *quizService) Advance(ctx context.Context, sessionID string, userID int64) (*QuizView, error) {
	active, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	active.Lock()
	defer active.Unlock()

	state, err := active.Session.Advance()
	if err != nil {
		return nil, protocolError(err)
	}

	if state == quiz.StateFinished {
		s.finish(ctx, active)
	}

	view := snapshot(active)
	return &view, nil
}

func (s *quizService) Retry(ctx context.Context, sessionID string, userID int64) (*QuizView, error) {
	active, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	active.Lock()
	defer active.Unlock()

	questions, err := quiz.BuildSession(s.newRand(), active.Pool, active.Category)
	if err != nil {
		return nil, errors.NewEmptyPoolError("no flashcards available for this quiz")
	}
	if err := active.Session.Start(questions); err != nil {
		return nil, errors.NewEmptyPoolError("no flashcards available for this quiz")
	}

	logger.FromContext(ctx).Info("quiz restarted: session=%s", sessionID)
	view := snapshot(active)
	return &view, nil
}

func (s *quizService) Get(ctx context.Context, sessionID string, userID int64) (*QuizView, error) {
	active, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	active.Lock()
	defer active.Unlock()

	view := snapshot(active)
	return &view, nil
}

func (s *quizService) History(ctx context.Context, userID int64, limit, offset int) ([]models.QuizSessionSummary, int, error) {
	log := logger.FromContext(ctx)

	summaries, err := s.results.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		log.Error("failed to list quiz history: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.results.CountForUser(ctx, userID)
	if err != nil {
		log.Error("failed to count quiz history: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	return summaries, total, nil
}

// finish enqueues the session summary. Persistence is fire-and-forget: the
// user sees their score immediately even if the write later fails.
// An unfiltered quiz is stored with category "all".
func (s *quizService) finish(ctx context.Context, active *quiz.Active) {
	category := active.Category
	if category == "" {
		category = "all"
	}
	results := active.Session.Results()
	summary := models.QuizSessionSummary{
		UserID:         active.UserID,
		TakenAt:        s.now(),
		Category:       category,
		DeckID:         active.DeckID,
		TotalQuestions: len(results),
		CorrectAnswers: quiz.CountCorrect(results),
	}
	s.queue.EnqueueQuizSummary(summary)
	logger.FromContext(ctx).Info("quiz finished: session=%s, score=%d%%", active.ID, quiz.Score(results))
}

func (s *quizService) ownedSession(sessionID string, userID int64) (*quiz.Active, error) {
	active, ok := s.store.Get(sessionID)
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", sessionID)
	}
	if active.UserID != userID {
		return nil, errors.NewForbiddenError("quiz session belongs to another user")
	}
	return active, nil
}

// snapshot builds the client view. Callers hold the session lock.
func snapshot(active *quiz.Active) QuizView {
	sess := active.Session
	view := QuizView{
		SessionID: active.ID,
		State:     sess.State().String(),
		Index:     sess.Index(),
		Total:     sess.Total(),
		Answered:  sess.Answered(),
	}

	switch sess.State() {
	case quiz.StateInProgress:
		q, err := sess.Current()
		if err == nil {
			view.Question = &QuizQuestionView{
				FlashcardID: q.FlashcardID,
				Question:    q.Question,
				Options:     q.Options,
				Category:    q.Category,
			}
		}
	case quiz.StateFinished:
		results := sess.Results()
		score := quiz.Score(results)
		view.Score = &score
		view.Results = results
	}
	return view
}

func protocolError(err error) error {
	switch err {
	case quiz.ErrAlreadyAnswered:
		return errors.NewProtocolViolationError("question already answered", err)
	case quiz.ErrNoActiveQuestion:
		return errors.NewProtocolViolationError("no active question", err)
	default:
		return errors.NewInternalError(err)
	}
}
