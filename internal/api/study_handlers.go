package api

import "net/http"

type confidenceRequest struct {
	FlashcardID int64 `json:"flashcard_id"`
	Level       int   `json:"level"`
}

func (s *Server) handleRecordConfidence(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	var req confidenceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	record, err := s.Study.RecordConfidence(r.Context(), user.ID, req.FlashcardID, req.Level)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, record)
}

func (s *Server) handleStudyProgress(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	records, err := s.Study.Progress(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, records)
}
