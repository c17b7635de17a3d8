package checkin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recenterhq/driftcheck/internal/queue"
	"github.com/recenterhq/driftcheck/pkg/models"
)

// Outcome is the result of one submission: either an immediate authoritative
// result, or a queued acknowledgment. Never both.
type Outcome struct {
	Result  *models.CheckinResult `json:"result,omitempty"`
	Queued  bool                  `json:"queued,omitempty"`
	QueueID string                `json:"queue_id,omitempty"`
}

// Router is the single seam between the connectivity signal and the two
// submission paths. Its policy is deliberate: as long as local storage is
// healthy, a submission never hard-fails on a connectivity-class error, it
// degrades to "queued for later".
type Router struct {
	submitter queue.Submitter
	queue     *queue.Manager
	logger    *slog.Logger
}

func NewRouter(submitter queue.Submitter, q *queue.Manager, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{submitter: submitter, queue: q, logger: logger}
}

// Submit routes one check-in. online is a best-effort hint: when false the
// network is never touched and the check-in is queued; when true a direct
// submission is attempted and any failure, including a stale hint, falls
// back to the queue. An error is returned only when enqueueing itself fails,
// which is a data-loss risk the caller must surface.
func (r *Router) Submit(ctx context.Context, answers models.Answers, reflectionNote string, online bool) (*Outcome, error) {
	if err := answers.Validate(); err != nil {
		// invalid answers are the caller's bug, not a connectivity problem;
		// queuing them would poison the queue with permanent failures
		return nil, fmt.Errorf("invalid answers: %w", err)
	}

	if !online {
		return r.enqueue(ctx, answers, reflectionNote)
	}

	result, err := r.submitter.SubmitCheckin(ctx, answers, reflectionNote)
	if err == nil {
		return &Outcome{Result: result}, nil
	}
	// the online hint was wrong or the endpoint failed; either way the
	// user's check-in survives locally
	r.logger.Warn("direct submission failed, queuing", slog.Any("err", err))
	return r.enqueue(ctx, answers, reflectionNote)
}

func (r *Router) enqueue(ctx context.Context, answers models.Answers, reflectionNote string) (*Outcome, error) {
	id, err := r.queue.Enqueue(ctx, answers, reflectionNote)
	if err != nil {
		return nil, err
	}
	return &Outcome{Queued: true, QueueID: id}, nil
}
