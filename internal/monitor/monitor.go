package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	ucappointment "github.com/neal92/ServiceBooking-sub000/internal/usecase/appointment"
)

// Monitor drives the appointment auto-progression on a fixed cadence:
// one sweep immediately on start, then one per interval. Stop cancels
// the pending timer; no sweep runs after Stop returns.
type Monitor struct {
	progress *ucappointment.AutoProgress
	interval time.Duration
	log      zerolog.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(
	progress *ucappointment.AutoProgress,
	interval time.Duration,
	log zerolog.Logger,
) *Monitor {
	return &Monitor{
		progress: progress,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Start launches the sweep loop. Calling Start on a running monitor is
// a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx, m.done)
	m.log.Info().Dur("interval", m.interval).Msg("progression monitor started")
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	m.sweep(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) sweep(ctx context.Context) {
	promoted, err := m.progress.Execute(ctx, m.now())
	if err != nil {
		m.log.Error().Err(err).Msg("progression sweep failed")
		return
	}
	if promoted > 0 {
		m.log.Info().Int("promoted", promoted).Msg("appointments moved to in-progress")
	}
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
// Stopping a stopped monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	m.log.Info().Msg("progression monitor stopped")
}

func (m *Monitor) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

func (m *Monitor) Interval() time.Duration {
	return m.interval
}
