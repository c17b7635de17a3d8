package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/recenterhq/driftcheck/internal/tips"
	"github.com/recenterhq/driftcheck/pkg/models"
	"github.com/recenterhq/driftcheck/pkg/repository"
)

type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepo
}

func NewFeedbackHandler(fr repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: fr}
}

type postFeedbackRequest struct {
	Dimension models.Dimension `json:"dimension"`
	Category  models.Category  `json:"category"`
	Feedback  models.Feedback  `json:"feedback"`
}

type postFeedbackResponse struct {
	ID int64 `json:"id"`
}

// CreateFeedback appends one tip-feedback entry. History is append-only:
// there is no update or delete path by design.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req postFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !req.Feedback.Valid() {
		writeError(w, "feedback must be helpful, didnt_try or not_relevant", http.StatusBadRequest)
		return
	}
	if !tips.KnownPair(req.Dimension, req.Category) {
		writeError(w, "unknown dimension or category", http.StatusBadRequest)
		return
	}

	id, err := h.feedbackRepo.CreateFeedback(r.Context(), &models.TipFeedbackEntry{
		UserID:    userID,
		Dimension: req.Dimension,
		Category:  req.Category,
		Feedback:  req.Feedback,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		writeError(w, "failed to store feedback", http.StatusInternalServerError)
		return
	}

	writeJSON(w, postFeedbackResponse{ID: id}, http.StatusCreated)
}
