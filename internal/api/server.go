package api

import "github.com/mariano/flashdeck/internal/services"

// Server holds the HTTP handler dependencies.
type Server struct {
	Users      services.UserService
	Flashcards services.FlashcardService
	Decks      services.DeckService
	Quiz       services.QuizService
	Study      services.StudyService
	Sharing    services.SharingService
	Stats      services.StatsService

	CORSOrigins []string
}
