// Package sim drives the pet simulation clock: a fixed-cadence ticker that
// fires the decline callback until stopped.
package sim

import (
	"sync"
	"time"
)

// DefaultInterval is the tick cadence used when a caller passes a
// non-positive interval. The decay engine's own divisor sets game speed,
// so the interval only has to be short and steady.
const DefaultInterval = 250 * time.Millisecond

// Scheduler invokes a callback at a fixed interval on its own goroutine.
// Start while running is a no-op, so double-starting never stacks timers.
// Stop is safe without a prior Start and returns only after any in-flight
// callback has finished. The callback must not block on I/O; it is meant
// to mutate in-memory state and return.
type Scheduler struct {
	interval time.Duration
	tick     func()

	mu      sync.Mutex
	done    chan struct{}
	stopped chan struct{}
}

func New(interval time.Duration, tick func()) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval, tick: tick}
}

// Start launches the tick loop. Calling Start on a running scheduler does
// nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.run(s.done, s.stopped)
}

func (s *Scheduler) run(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Stop halts the tick loop and waits for it to exit, so no callback is
// running once Stop returns. Stopping an idle scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	done, stopped := s.done, s.stopped
	s.done = nil
	s.stopped = nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	<-stopped
}

// Running reports whether the tick loop is live.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}
