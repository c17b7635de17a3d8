// Package queue orchestrates the offline check-in queue: durable enqueue
// against the local store and a sequential sync pass that drains the queue
// through the remote endpoint.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/recenterhq/driftcheck/pkg/models"
	"github.com/recenterhq/driftcheck/pkg/repository"
)

// Submitter posts one check-in to the remote endpoint. Any returned error
// (HTTP failure, timeout, transport error) leaves the entry queued.
type Submitter interface {
	SubmitCheckin(ctx context.Context, answers models.Answers, reflectionNote string) (*models.CheckinResult, error)
}

// Result aggregates one sync pass. Per-item errors are folded into Failed;
// callers decide whether to schedule another pass.
type Result struct {
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

// Manager owns enqueue/dequeue against the local store and drives sync.
type Manager struct {
	store     repository.QueueStore
	submitter Submitter
	logger    *slog.Logger
}

func NewManager(store repository.QueueStore, submitter Submitter, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, submitter: submitter, logger: logger}
}

// Enqueue persists a check-in for later submission and returns its id. A
// failed enqueue is a data-loss risk and is always surfaced to the caller.
func (m *Manager) Enqueue(ctx context.Context, answers models.Answers, reflectionNote string) (string, error) {
	q := &models.QueuedCheckin{
		ID:             uuid.NewString(),
		Answers:        answers,
		ReflectionNote: reflectionNote,
		EnqueuedAt:     time.Now().UTC().UnixMilli(),
	}
	if err := m.store.Add(ctx, q); err != nil {
		return "", fmt.Errorf("enqueue checkin: %w", err)
	}
	m.logger.Info("checkin queued", slog.String("id", q.ID))
	return q.ID, nil
}

// Count returns the number of unsynced entries. Storage errors degrade to 0:
// this feeds an advisory badge and losing the count beats crashing the caller.
func (m *Manager) Count(ctx context.Context) int {
	n, err := m.store.CountUnsynced(ctx)
	if err != nil {
		m.logger.Warn("queue count unavailable", slog.Any("err", err))
		return 0
	}
	return int(n)
}

// Process runs one sync pass: entries are submitted strictly one at a time in
// storage order, each network call awaited fully before the next, so at most
// one submission is ever in flight. Success deletes the entry; any failure
// leaves it untouched and moves on. One item's failure never aborts the batch.
func (m *Manager) Process(ctx context.Context) (Result, error) {
	entries, err := m.store.ListUnsynced(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list queued checkins: %w", err)
	}
	if len(entries) == 0 {
		return Result{}, nil
	}

	var res Result
	for _, e := range entries {
		if _, err := m.submitter.SubmitCheckin(ctx, e.Answers, e.ReflectionNote); err != nil {
			res.Failed++
			m.logger.Warn("sync failed, entry retained",
				slog.String("id", e.ID), slog.Any("err", err))
			continue
		}
		if err := m.store.Delete(ctx, e.ID); err != nil {
			// submitted but not deleted: the entry will be resubmitted on the
			// next pass, which the endpoint tolerates
			res.Failed++
			m.logger.Error("delete synced entry", slog.String("id", e.ID), slog.Any("err", err))
			continue
		}
		res.Synced++
	}

	m.logger.Info("sync pass finished",
		slog.Int("synced", res.Synced), slog.Int("failed", res.Failed))
	return res, nil
}
