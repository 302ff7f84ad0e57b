package study

import (
	"sync"
	"time"
)

// DefaultAdvanceDelay is how long an answered card stays revealed.
const DefaultAdvanceDelay = 20 * time.Second

// Token identifies one scheduled task. Only the most recent token can fire.
type Token uint64

// Scheduler runs at most one delayed task at a time. Scheduling a task or
// cancelling invalidates the previous token, so a timer that fires late for
// an older token does nothing.
type Scheduler struct {
	mu    sync.Mutex
	gen   Token
	timer *time.Timer
}

// Schedule cancels any pending task and runs fn after delay on its own
// goroutine. fn receives the task's token; a callback that waits on another
// lock before acting should Claim the token once it holds that lock.
func (s *Scheduler) Schedule(delay time.Duration, fn func(Token)) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.gen++
	token := s.gen
	s.timer = time.AfterFunc(delay, func() {
		s.fire(token, fn)
	})
	return token
}

// Cancel drops the pending task, if any.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.gen++
}

// Claim reports whether token still names the newest task and, if so,
// retires it so no later Claim for it succeeds.
func (s *Scheduler) Claim(token Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	s.stopLocked()
	s.gen++
	return true
}

// Pending reports whether a task is waiting to fire.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Current returns the token of the newest scheduled task.
func (s *Scheduler) Current() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Scheduler) fire(token Token, fn func(Token)) {
	s.mu.Lock()
	if token != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	fn(token)
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
