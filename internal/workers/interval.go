package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
)

// IntervalWorker invokes fn once per interval until its context is
// cancelled. The first call happens one full interval after Run starts.
type IntervalWorker struct {
	name     string
	interval time.Duration
	clock    clockwork.Clock
	fn       func(ctx context.Context)
	logger   *logger.Logger
}

// NewIntervalWorker constructs an IntervalWorker. A nil clock selects the
// real wall clock.
func NewIntervalWorker(name string, interval time.Duration, clock clockwork.Clock, fn func(ctx context.Context), logger *logger.Logger) *IntervalWorker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &IntervalWorker{
		name:     name,
		interval: interval,
		clock:    clock,
		fn:       fn,
		logger:   logger,
	}
}

// Run implements [Worker].
func (w *IntervalWorker) Run(ctx context.Context) {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")
	defer w.logger.Debug().Str("worker", w.name).Msg("worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			// cancellation may race with a pending tick
			if ctx.Err() != nil {
				return
			}
			w.fn(ctx)
		}
	}
}
