package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(s.userMiddleware)

	r.Get("/health", s.handleHealth)

	r.Post("/users", s.handleUpsertUser)
	r.Get("/users", s.handleListUsers)
	r.Get("/users/me", s.handleCurrentUser)
	r.Post("/users/{id}/select", s.handleSelectUser)
	r.Post("/users/logout", s.handleLogout)

	r.Get("/flashcards", s.handleListFlashcards)
	r.Post("/flashcards", s.handleCreateFlashcard)
	r.Get("/flashcards/{id}", s.handleGetFlashcard)
	r.Put("/flashcards/{id}", s.handleUpdateFlashcard)
	r.Delete("/flashcards/{id}", s.handleDeleteFlashcard)
	r.Get("/categories", s.handleListCategories)

	r.Get("/decks", s.handleListDecks)
	r.Post("/decks", s.handleCreateDeck)
	r.Get("/decks/public", s.handleListPublicDecks)
	r.Get("/decks/{id}", s.handleGetDeck)
	r.Put("/decks/{id}", s.handleUpdateDeck)
	r.Delete("/decks/{id}", s.handleDeleteDeck)
	r.Post("/decks/{id}/assign", s.handleAssignCards)
	r.Delete("/decks/{id}/cards/{cardID}", s.handleRemoveCard)
	r.Get("/shared/{token}", s.handleDeckByShareToken)

	r.Post("/quiz", s.handleStartQuiz)
	r.Get("/quiz/{sessionID}", s.handleGetQuiz)
	r.Post("/quiz/{sessionID}/answer", s.handleAnswerQuiz)
	r.Post("/quiz/{sessionID}/next", s.handleAdvanceQuiz)
	r.Post("/quiz/{sessionID}/retry", s.handleRetryQuiz)
	r.Get("/quiz-history", s.handleQuizHistory)

	r.Post("/study/confidence", s.handleRecordConfidence)
	r.Get("/study/progress", s.handleStudyProgress)

	r.Post("/decks/{id}/shares", s.handleShareDeck)
	r.Delete("/decks/{id}/shares/{userID}", s.handleUnshareDeck)
	r.Get("/shared-decks", s.handleSharedDecks)
	r.Post("/decks/{id}/collaborators", s.handleAddCollaborator)
	r.Get("/decks/{id}/collaborators", s.handleListCollaborators)
	r.Post("/decks/{id}/comments", s.handleAddComment)
	r.Get("/decks/{id}/comments", s.handleListComments)
	r.Post("/decks/{id}/ratings", s.handleRateDeck)
	r.Get("/decks/{id}/ratings", s.handleRatingSummary)

	r.Get("/stats/dashboard", s.handleDashboard)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
