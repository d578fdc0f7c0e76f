package api

import (
	"net/http"

	"github.com/mariano/flashdeck/internal/models"
)

type shareRequest struct {
	UserID     int64  `json:"user_id"`
	Permission string `json:"permission"`
}

type collaboratorRequest struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type ratingRequest struct {
	Score int `json:"score"`
}

func (s *Server) handleShareDeck(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	share, err := s.Sharing.ShareDeck(r.Context(), user.ID, models.DeckShare{
		DeckID:           deckID,
		SharedWithUserID: req.UserID,
		Permission:       req.Permission,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, share)
}

func (s *Server) handleUnshareDeck(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := idParam(r, "userID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Sharing.Unshare(r.Context(), user.ID, deckID, userID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleSharedDecks(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	shares, err := s.Sharing.SharedWithUser(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, shares)
}

func (s *Server) handleAddCollaborator(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req collaboratorRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	collab, err := s.Sharing.AddCollaborator(r.Context(), user.ID, models.DeckCollaborator{
		DeckID: deckID,
		UserID: req.UserID,
		Role:   req.Role,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, collab)
}

func (s *Server) handleListCollaborators(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	collabs, err := s.Sharing.Collaborators(r.Context(), user.ID, deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, collabs)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	comment, err := s.Sharing.AddComment(r.Context(), models.DeckComment{
		DeckID:  deckID,
		UserID:  user.ID,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, comment)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	comments, err := s.Sharing.Comments(r.Context(), user.ID, deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, comments)
}

func (s *Server) handleRateDeck(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var req ratingRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Sharing.RateDeck(r.Context(), models.DeckRating{
		DeckID: deckID,
		UserID: user.ID,
		Score:  req.Score,
	}); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleRatingSummary(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	deckID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.Sharing.RatingSummary(r.Context(), user.ID, deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}
