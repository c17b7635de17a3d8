package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/qri-io/jsonschema"

	"github.com/recenterhq/driftcheck/internal/labels"
	"github.com/recenterhq/driftcheck/internal/scoring"
	"github.com/recenterhq/driftcheck/internal/tips"
	"github.com/recenterhq/driftcheck/pkg/models"
	"github.com/recenterhq/driftcheck/pkg/repository"
)

// recentWindow is how many previous check-ins feed the adaptive message.
const recentWindow = 5

type CheckinsHandler struct {
	checkinRepo  repository.CheckinRepo
	feedbackRepo repository.FeedbackRepo
	schema       *jsonschema.Schema
}

func NewCheckinsHandler(cr repository.CheckinRepo, fr repository.FeedbackRepo) (*CheckinsHandler, error) {
	rs, err := compileCheckinSchema()
	if err != nil {
		return nil, err
	}
	return &CheckinsHandler{checkinRepo: cr, feedbackRepo: fr, schema: rs}, nil
}

type postCheckinRequest struct {
	Answers        models.Answers `json:"answers"`
	ReflectionNote string         `json:"reflection_note"`
}

// CreateCheckin is the authoritative scoring path: the same engines the
// offline client previews with, run server-side against the user's stored
// feedback history.
func (h *CheckinsHandler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if msg := validateAgainst(ctx, h.schema, body); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	var req postCheckinRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	req.ReflectionNote = strings.TrimSpace(req.ReflectionNote)

	score, cat, weakest, err := scoring.Evaluate(req.Answers)
	if err != nil {
		// the schema already enforces ranges, this guards handler/schema drift
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	history, err := h.feedbackRepo.ListFeedbackByUser(ctx, userID)
	if err != nil {
		writeError(w, "failed to load feedback history", http.StatusInternalServerError)
		return
	}
	tip := tips.Select(weakest, cat, history)

	// previous check-ins only; the one being created is the subject, not history
	recent, err := h.checkinRepo.RecentWeakestDimensions(ctx, userID, recentWindow)
	if err != nil {
		logger.Warn("recent weakest dimensions unavailable", slog.Any("err", err))
		recent = nil
	}
	adaptive := tips.AdaptiveMessage(weakest, recent, labels.For(localeFrom(r)))

	now := time.Now().UTC()
	c := &models.Checkin{
		UserID:         userID,
		Answers:        req.Answers,
		ReflectionNote: req.ReflectionNote,
		Score:          score,
		Category:       cat,
		WeakestDim:     weakest,
		Created:        now.Unix(),
	}
	id, err := h.checkinRepo.CreateCheckin(ctx, c)
	if err != nil {
		writeError(w, "failed to store checkin", http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.CheckinResult{
		ID:              id,
		Score:           score,
		Category:        cat,
		WeakestDim:      weakest,
		Tip:             tip,
		AdaptiveMessage: adaptive,
		CreatedAt:       now,
	}, http.StatusCreated)
}

func (h *CheckinsHandler) ListCheckins(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	limit := 50
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	offset := 0
	if o := q.Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	items, err := h.checkinRepo.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, "failed to list checkins", http.StatusInternalServerError)
		return
	}
	total, err := h.checkinRepo.CountByUser(r.Context(), userID)
	if err != nil {
		writeError(w, "failed to count checkins", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Checkin{}
	}

	writeJSON(w, map[string]any{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	}, http.StatusOK)
}

// localeFrom picks the response locale: explicit query param first, then the
// first Accept-Language tag. Unknown locales fall back inside labels.For.
func localeFrom(r *http.Request) string {
	if l := r.URL.Query().Get("locale"); l != "" {
		return l
	}
	al := r.Header.Get("Accept-Language")
	if al == "" {
		return labels.DefaultLocale
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.IndexAny(tag, "-;"); i > 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
