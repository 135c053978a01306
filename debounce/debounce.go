// Package debounce coalesces rapid keystrokes in a search box into a
// single request. Every search box in the console gets its own Scheduler.
package debounce

import (
	"strings"
	"sync"
	"time"
)

// SearchDebounce is the quiet period a search box waits for before
// firing. Every search box uses the same window.
const SearchDebounce = 300 * time.Millisecond

// Scheduler debounces one logical search box.
//
// Only the last Schedule call within the debounce window fires. A request
// already in flight when a newer keyword arrives is not aborted, but its
// sequence number goes stale, so the caller can drop the late response
// instead of letting a slow early request overwrite a fast later one.
type Scheduler struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64

	search func(keyword string, seq uint64)
	clear  func()
}

// NewScheduler binds a scheduler to a search box. search runs on the
// timer goroutine once the debounce window elapses; clear runs
// synchronously when the keyword empties out.
func NewScheduler(search func(keyword string, seq uint64), clear func()) *Scheduler {
	return &Scheduler{
		delay:  SearchDebounce,
		search: search,
		clear:  clear,
	}
}

// SetDelay overrides the debounce window. Tests use this; production
// call sites keep SearchDebounce.
func (s *Scheduler) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Schedule registers a keystroke. An empty keyword (after trim) cancels
// any pending timer and clears results immediately without a network
// call; anything else restarts the debounce timer.
func (s *Scheduler) Schedule(keyword string) {
	s.mu.Lock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++

	if strings.TrimSpace(keyword) == "" {
		s.mu.Unlock()
		if s.clear != nil {
			s.clear()
		}
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(keyword, seq)
	})
	s.mu.Unlock()
}

// Stale reports whether a response tagged with seq has been superseded by
// a newer Schedule call and should be discarded.
func (s *Scheduler) Stale(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq != s.seq
}

// Cancel stops any pending timer without clearing results.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
}

func (s *Scheduler) fire(keyword string, seq uint64) {
	s.mu.Lock()
	// the timer has done its job; drop the handle so a later Schedule
	// does not try to stop it again
	s.timer = nil
	superseded := seq != s.seq
	s.mu.Unlock()

	if superseded {
		return
	}
	s.search(keyword, seq)
}
