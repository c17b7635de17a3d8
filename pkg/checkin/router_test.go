package checkin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/recenterhq/driftcheck/internal/db"
	"github.com/recenterhq/driftcheck/internal/queue"
	"github.com/recenterhq/driftcheck/internal/store"
	"github.com/recenterhq/driftcheck/pkg/checkin"
	"github.com/recenterhq/driftcheck/pkg/models"
)

type stubSubmitter struct {
	calls int
	err   error
}

func (s *stubSubmitter) SubmitCheckin(ctx context.Context, a models.Answers, note string) (*models.CheckinResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &models.CheckinResult{Score: 20, Category: models.CategoryMild, WeakestDim: models.DimEnergy}, nil
}

func newRouter(t *testing.T, sub *stubSubmitter) (*checkin.Router, *queue.Manager) {
	t.Helper()
	ctx := context.Background()
	d, err := db.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	s, err := store.Open(ctx, d)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	q := queue.NewManager(s, sub, nil)
	return checkin.NewRouter(sub, q, nil), q
}

func TestSubmit_OfflineNeverTouchesNetwork(t *testing.T) {
	sub := &stubSubmitter{}
	r, q := newRouter(t, sub)

	out, err := r.Submit(context.Background(), validAnswers(), "note", false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Queued || out.QueueID == "" || out.Result != nil {
		t.Fatalf("outcome=%+v, want queued with id", out)
	}
	if sub.calls != 0 {
		t.Fatalf("submitter called %d times while offline", sub.calls)
	}
	if got := q.Count(context.Background()); got != 1 {
		t.Fatalf("queue count=%d, want 1", got)
	}
}

func TestSubmit_OnlineReturnsAuthoritativeResult(t *testing.T) {
	sub := &stubSubmitter{}
	r, q := newRouter(t, sub)

	out, err := r.Submit(context.Background(), validAnswers(), "", true)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Queued || out.Result == nil || out.Result.Score != 20 {
		t.Fatalf("outcome=%+v, want direct result", out)
	}
	if got := q.Count(context.Background()); got != 0 {
		t.Fatalf("queue count=%d, want 0", got)
	}
}

func TestSubmit_OnlineFailureFallsBackToQueue(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("connection reset")}
	r, q := newRouter(t, sub)

	out, err := r.Submit(context.Background(), validAnswers(), "", true)
	if err != nil {
		t.Fatalf("Submit surfaced a network error: %v", err)
	}
	if !out.Queued || out.QueueID == "" {
		t.Fatalf("outcome=%+v, want queued fallback", out)
	}
	if sub.calls != 1 {
		t.Fatalf("submitter calls=%d, want 1", sub.calls)
	}
	if got := q.Count(context.Background()); got != 1 {
		t.Fatalf("queue count=%d, want 1", got)
	}
}

func TestSubmit_RejectsInvalidAnswers(t *testing.T) {
	sub := &stubSubmitter{}
	r, q := newRouter(t, sub)

	bad := validAnswers()
	bad.Energy = 9
	if _, err := r.Submit(context.Background(), bad, "", true); err == nil {
		t.Fatal("invalid answers accepted")
	}
	if sub.calls != 0 {
		t.Fatal("invalid answers reached the network")
	}
	if got := q.Count(context.Background()); got != 0 {
		t.Fatal("invalid answers were queued")
	}
}
