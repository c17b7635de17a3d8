package queue_test

import (
	"context"
	"errors"
	"testing"

	"github.com/recenterhq/driftcheck/internal/db"
	"github.com/recenterhq/driftcheck/internal/queue"
	"github.com/recenterhq/driftcheck/internal/store"
	"github.com/recenterhq/driftcheck/pkg/models"
)

type fakeSubmitter struct {
	calls   int
	failOn  map[int]bool // 1-based call index -> fail
	lastErr error
}

func (f *fakeSubmitter) SubmitCheckin(ctx context.Context, a models.Answers, note string) (*models.CheckinResult, error) {
	f.calls++
	if f.failOn[f.calls] {
		f.lastErr = errors.New("connection refused")
		return nil, f.lastErr
	}
	return &models.CheckinResult{Score: 40, Category: models.CategoryModerate}, nil
}

type failingStore struct{ repositoryErr error }

func (f *failingStore) Add(ctx context.Context, q *models.QueuedCheckin) error {
	return f.repositoryErr
}
func (f *failingStore) ListUnsynced(ctx context.Context) ([]models.QueuedCheckin, error) {
	return nil, f.repositoryErr
}
func (f *failingStore) Delete(ctx context.Context, id string) error { return f.repositoryErr }
func (f *failingStore) CountUnsynced(ctx context.Context) (int64, error) {
	return 0, f.repositoryErr
}

func newManager(t *testing.T, sub queue.Submitter) (*queue.Manager, *store.Store) {
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
	return queue.NewManager(s, sub, nil), s
}

func answers() models.Answers {
	return models.Answers{Energy: 2, Sleep: 3, Structure: 3, Initiation: 2, Engagement: 3, Sustainability: 3}
}

func TestEnqueueGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t, &fakeSubmitter{})

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := m.Enqueue(ctx, answers(), "")
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
		if id == "" || seen[id] {
			t.Fatalf("id %q empty or duplicated", id)
		}
		seen[id] = true
	}
	if got := m.Count(ctx); got != 20 {
		t.Fatalf("Count=%d, want 20", got)
	}
}

func TestEnqueuePropagatesStorageError(t *testing.T) {
	m := queue.NewManager(&failingStore{repositoryErr: errors.New("disk full")}, &fakeSubmitter{}, nil)
	if _, err := m.Enqueue(context.Background(), answers(), ""); err == nil {
		t.Fatal("Enqueue swallowed a storage error")
	}
}

func TestCountSwallowsStorageError(t *testing.T) {
	m := queue.NewManager(&failingStore{repositoryErr: errors.New("locked")}, &fakeSubmitter{}, nil)
	if got := m.Count(context.Background()); got != 0 {
		t.Fatalf("Count=%d, want 0 on storage error", got)
	}
}

func TestProcessEmptyQueueMakesNoNetworkCalls(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{}
	m, _ := newManager(t, sub)

	res, err := m.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Synced != 0 || res.Failed != 0 {
		t.Fatalf("result=%+v, want zero", res)
	}
	if sub.calls != 0 {
		t.Fatalf("submitter called %d times on empty queue", sub.calls)
	}
}

func TestProcessPartialFailure(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{failOn: map[int]bool{2: true}}
	m, s := newManager(t, sub)

	for i := 0; i < 3; i++ {
		if _, err := m.Enqueue(ctx, answers(), ""); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	// capture storage order up front; Process must follow it
	before, err := s.ListUnsynced(ctx)
	if err != nil {
		t.Fatalf("ListUnsynced: %v", err)
	}

	res, err := m.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Synced != 2 || res.Failed != 1 {
		t.Fatalf("result=%+v, want {Synced:2 Failed:1}", res)
	}
	if sub.calls != 3 {
		t.Fatalf("submitter calls=%d, want 3 (failure must not abort the batch)", sub.calls)
	}

	// exactly the failed entry remains, byte-identical for the next pass
	remaining, err := s.ListUnsynced(ctx)
	if err != nil {
		t.Fatalf("ListUnsynced: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != before[1].ID {
		t.Fatalf("remaining=%v, want only %s", remaining, before[1].ID)
	}

	// next pass drains the retained entry
	res, err = m.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Synced != 1 || res.Failed != 0 {
		t.Fatalf("second pass result=%+v, want {Synced:1 Failed:0}", res)
	}
	if got := m.Count(ctx); got != 0 {
		t.Fatalf("Count=%d after drain, want 0", got)
	}
}

func TestProcessAllFailuresRetainsEverything(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{failOn: map[int]bool{1: true, 2: true}}
	m, _ := newManager(t, sub)

	for i := 0; i < 2; i++ {
		if _, err := m.Enqueue(ctx, answers(), ""); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	res, err := m.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Synced != 0 || res.Failed != 2 {
		t.Fatalf("result=%+v, want {Synced:0 Failed:2}", res)
	}
	if got := m.Count(ctx); got != 2 {
		t.Fatalf("Count=%d, want 2", got)
	}
}
