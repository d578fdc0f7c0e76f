package models

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DashboardStats struct {
	TotalFlashcards int             `json:"total_flashcards"`
	TotalDecks      int             `json:"total_decks"`
	QuizzesTaken    int             `json:"quizzes_taken"`
	AverageScore    float64         `json:"average_score"`
	CardsDue        int             `json:"cards_due"`
	Categories      []CategoryCount `json:"categories"`
}
