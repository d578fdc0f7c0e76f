package quiz

import (
	"errors"

	"github.com/mariano/flashdeck/internal/models"
)

// State is the lifecycle phase of a quiz session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrNoActiveQuestion is returned for calls that need an in-progress
	// session: submitting before Start, or after Finished.
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrAlreadyAnswered is returned when the current question was answered
	// and Advance has not been called yet; no second result is recorded.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// Session steps through an ordered question list, recording one result per
// question. Not safe for concurrent use; callers serialize access.
type Session struct {
	questions []models.QuizQuestion
	results   []models.QuizResult
	state     State
	index     int
	answered  bool
}

// NewSession returns a session in the NotStarted state.
func NewSession() *Session {
	return &Session{state: StateNotStarted}
}

// Start begins (or restarts) the session with the given questions. A restart
// discards all prior results; it is a fresh run, not a replay.
func (s *Session) Start(questions []models.QuizQuestion) error {
	if len(questions) == 0 {
		return ErrNoCards
	}
	s.questions = questions
	s.results = nil
	s.state = StateInProgress
	s.index = 0
	s.answered = false
	return nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Answered reports whether the current question already has a result.
func (s *Session) Answered() bool { return s.answered }

// Current returns the question awaiting an answer.
func (s *Session) Current() (models.QuizQuestion, error) {
	if s.state != StateInProgress {
		return models.QuizQuestion{}, ErrNoActiveQuestion
	}
	return s.questions[s.index], nil
}

// SubmitAnswer records the selected option against the current question and
// returns the resulting record. Submitting twice before Advance is rejected
// and leaves the recorded results unchanged.
func (s *Session) SubmitAnswer(selected string) (models.QuizResult, error) {
	if s.state != StateInProgress {
		return models.QuizResult{}, ErrNoActiveQuestion
	}
	if s.answered {
		return models.QuizResult{}, ErrAlreadyAnswered
	}
	q := s.questions[s.index]
	result := models.QuizResult{
		FlashcardID:   q.FlashcardID,
		Question:      q.Question,
		Correct:       selected == q.CorrectAnswer,
		Selected:      selected,
		CorrectAnswer: q.CorrectAnswer,
	}
	s.results = append(s.results, result)
	s.answered = true
	return result, nil
}

// Advance moves to the next question, or to Finished after the last one.
// Once Finished the session is immutable.
func (s *Session) Advance() (State, error) {
	if s.state != StateInProgress {
		return s.state, ErrNoActiveQuestion
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.answered = false
		return StateInProgress, nil
	}
	s.state = StateFinished
	return StateFinished, nil
}

// Results returns a copy of the ordered per-question results recorded so far.
func (s *Session) Results() []models.QuizResult {
	out := make([]models.QuizResult, len(s.results))
	copy(out, s.results)
	return out
}
