package models

import "time"

// QuizQuestion is derived per session and never persisted. It carries only the
// source flashcard ID so an active session cannot mutate the stored card.
type QuizQuestion struct {
	FlashcardID   int64    `json:"flashcard_id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
	Category      string   `json:"category"`
}

// QuizResult records the outcome of a single answered question, in question
// order. Appended exactly once per question and never mutated afterwards.
type QuizResult struct {
	FlashcardID   int64  `json:"flashcard_id"`
	Question      string `json:"question"`
	Correct       bool   `json:"correct"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizSessionSummary is the persisted aggregate of a finished session.
// Invariant: CorrectAnswers <= TotalQuestions.
type QuizSessionSummary struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	TakenAt        time.Time `json:"taken_at"`
	Category       string    `json:"category"`
	DeckID         *int64    `json:"deck_id"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
}

// UserProgress holds one row per (user, flashcard) pair, upserted each time
// the user records a study confidence rating.
type UserProgress struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	FlashcardID     int64     `json:"flashcard_id"`
	DeckID          *int64    `json:"deck_id"`
	ConfidenceLevel int       `json:"confidence_level"`
	LastStudiedAt   time.Time `json:"last_studied_at"`
	NextReviewAt    time.Time `json:"next_review_at"`
}
