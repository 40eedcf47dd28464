// Package watch re-renders templates as their source files change. Re-parses
// are debounced with an input-size-dependent delay, and a stale scheduled run
// is discarded when a newer one has been requested.
package watch

import (
	"sync"
	"time"
)

// Scheduler coalesces bursts of change notifications into single runs. Each
// Schedule call supersedes any pending one: only the most recent callback
// fires after its debounce window.
type Scheduler struct {
	minDelay time.Duration
	maxDelay time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewScheduler builds a scheduler whose debounce window scales between
// minDelay and maxDelay with input size.
func NewScheduler(minDelay, maxDelay time.Duration) *Scheduler {
	if minDelay <= 0 {
		minDelay = 150 * time.Millisecond
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Scheduler{minDelay: minDelay, maxDelay: maxDelay}
}

// DelayFor maps an input size in bytes to a debounce window. Small documents
// re-render near-immediately; large ones wait longer so rapid edits do not
// trigger constant full re-parses.
func (s *Scheduler) DelayFor(size int) time.Duration {
	delay := s.minDelay + time.Duration(size/1024)*10*time.Millisecond
	if delay > s.maxDelay {
		return s.maxDelay
	}
	return delay
}

// Schedule queues fn to run after the debounce window for an input of the
// given size, cancelling any previously scheduled run.
func (s *Scheduler) Schedule(size int, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.DelayFor(size), func() {
		s.mu.Lock()
		stale := gen != s.gen
		s.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// Stop cancels any pending run.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
