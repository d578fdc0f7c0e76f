package api

import (
	"net/http"
	"strconv"

	"github.com/mariano/flashdeck/internal/models"
)

type flashcardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	DeckID   *int64 `json:"deck_id"`
}

type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	filter := models.FlashcardFilter{
		UserID:   user.ID,
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit", 50),
		Offset:   queryInt(r, "offset", 0),
	}
	if raw := r.URL.Query().Get("deck_id"); raw != "" {
		deckID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && deckID > 0 {
			filter.DeckID = &deckID
		}
	}

	cards, total, err := s.Flashcards.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, listResponse{Items: cards, Total: total})
}

func (s *Server) handleGetFlashcard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.Flashcards.Get(r.Context(), id, user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	var req flashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.Flashcards.Create(r.Context(), models.Flashcard{
		UserID:   user.ID,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		DeckID:   req.DeckID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, card)
}

func (s *Server) handleUpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req flashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.Flashcards.Update(r.Context(), models.Flashcard{
		ID:       id,
		UserID:   user.ID,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleDeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Flashcards.Delete(r.Context(), id, user.ID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	categories, err := s.Flashcards.Categories(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, categories)
}
