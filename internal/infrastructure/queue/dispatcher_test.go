package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/api/metrics"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

type memActivityRepo struct {
	mu       sync.Mutex
	inserted []domain.Activity
}

func (r *memActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *a)
	return nil
}

func (r *memActivityRepo) Latest(_ context.Context, n int) ([]*domain.Activity, error) {
	return nil, nil
}

func (r *memActivityRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inserted)
}

func TestDispatcher_PersistsRecordedActivities(t *testing.T) {
	repo := &memActivityRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Record(domain.Activity{Action: "Created new project", CreatedAt: time.Now()})
	}

	deadline := time.After(2 * time.Second)
	for repo.count() < 5 {
		select {
		case <-deadline:
			t.Fatalf("expected 5 inserts, got %d", repo.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	repo := &memActivityRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// After cancellation the worker exits; Record must still not block.
	time.Sleep(20 * time.Millisecond)
	d.Record(domain.Activity{Action: "Updated user profile"})
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &memActivityRepo{}, zerolog.Nop())
	if d.n != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, d.n)
	}
}

func TestDispatcher_FullBufferDropsAndCounts(t *testing.T) {
	// No workers started: the buffer fills and the next Record must drop
	// without blocking.
	d := NewDispatcher(1, &memActivityRepo{}, zerolog.Nop())

	for i := 0; i < channelBuffer; i++ {
		d.Record(domain.Activity{Action: "Created new project"})
	}

	before := testutil.ToFloat64(metrics.ActivitiesDroppedTotal)
	done := make(chan struct{})
	go func() {
		d.Record(domain.Activity{Action: "Created new project"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Record blocked on a full buffer")
	}

	if got := testutil.ToFloat64(metrics.ActivitiesDroppedTotal); got != before+1 {
		t.Fatalf("expected dropped counter %v, got %v", before+1, got)
	}
	if len(d.ch) != channelBuffer {
		t.Fatalf("dropped entry must not enter the buffer, len=%d", len(d.ch))
	}
}
