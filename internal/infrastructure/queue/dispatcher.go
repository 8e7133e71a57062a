// Package queue moves activity-feed writes off the request path.
package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/api/metrics"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher buffers activity entries and persists them asynchronously with a
// small pool of workers. Record never blocks the caller for longer than a
// channel send; when the buffer is full the entry is dropped, since the feed
// is best-effort demo data.
type Dispatcher struct {
	ch   chan domain.Activity
	repo ports.ActivityRepository
	log  zerolog.Logger
	n    int
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		ch:   make(chan domain.Activity, channelBuffer),
		repo: repo,
		log:  log,
		n:    numWorkers,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.n; i++ {
		go d.runWorker(ctx, i)
	}
}

// Record enqueues an activity entry for persistence.
func (d *Dispatcher) Record(activity domain.Activity) {
	select {
	case d.ch <- activity:
	default:
		metrics.ActivitiesDroppedTotal.Inc()
		d.log.Warn().Str("action", activity.Action).Msg("activity buffer full, entry dropped")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-d.ch:
			if !ok {
				return
			}
			insertCtx, cancel := context.WithTimeout(context.Background(), insertTimeout)
			err := d.repo.Insert(insertCtx, &activity)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("action", activity.Action).
					Int("worker_id", id).
					Msg("activity insert failed")
				continue
			}
			metrics.ActivitiesRecordedTotal.Inc()
		}
	}
}
