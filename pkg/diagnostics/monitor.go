// pkg/diagnostics/monitor.go
package diagnostics

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Monitor holds the latest Report published by the simulation loop and logs
// it on a fixed interval from its own goroutine.
type Monitor struct {
	interval time.Duration
	logger   *logging.Logger

	mu        sync.RWMutex
	latest    Report
	published atomic.Uint64
	running   atomic.Bool
}

// NewMonitor creates a monitor. A non-positive interval disables periodic logging.
func NewMonitor(interval time.Duration, logger *logging.Logger) *Monitor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Monitor{
		interval: interval,
		logger:   logger,
	}
}

// Publish replaces the latest report. Safe to call from any goroutine.
func (m *Monitor) Publish(r Report) {
	m.mu.Lock()
	m.latest = r
	m.mu.Unlock()
	m.published.Add(1)
}

// Latest returns the most recent report and whether one was ever published
func (m *Monitor) Latest() (Report, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest, m.published.Load() > 0
}

// Published returns the number of reports received
func (m *Monitor) Published() uint64 {
	return m.published.Load()
}

// Run logs the latest report every interval until ctx is cancelled. It
// returns nil on cancellation so it can run inside an errgroup.
func (m *Monitor) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return fmt.Errorf("diagnostics monitor already running")
	}
	defer m.running.Store(false)

	if m.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info(ctx, "Diagnostics monitor started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			m.Log(context.WithoutCancel(ctx))
			return nil
		case <-ticker.C:
			m.Log(ctx)
		}
	}
}

// Log writes the latest report, with process memory and goroutine counts, at info level.
func (m *Monitor) Log(ctx context.Context) {
	r, ok := m.Latest()
	if !ok {
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	args := append(r.Fields(),
		"heap_mb", mem.HeapAlloc/1024/1024,
		"goroutines", runtime.NumGoroutine(),
	)
	m.logger.Info(ctx, "Diagnostics", args...)
}
