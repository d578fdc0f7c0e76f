package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mariano/flashdeck/internal/errors"
)

type startQuizRequest struct {
	Category string `json:"category"`
	DeckID   *int64 `json:"deck_id"`
}

type answerRequest struct {
	Selected string `json:"selected"`
}

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	var req startQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Quiz.Start(r.Context(), user.ID, req.Category, req.DeckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		handleError(w, r, errors.NewBadRequestError("missing session ID"))
		return
	}

	view, err := s.Quiz.Get(r.Context(), sessionID, user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Quiz.Answer(r.Context(), sessionID, user.ID, req.Selected)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAdvanceQuiz(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")

	view, err := s.Quiz.Advance(r.Context(), sessionID, user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleRetryQuiz(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	sessionID := chi.URLParam(r, "sessionID")

	view, err := s.Quiz.Retry(r.Context(), sessionID, user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleQuizHistory(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	summaries, total, err := s.Quiz.History(r.Context(), user.ID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, listResponse{Items: summaries, Total: total})
}
