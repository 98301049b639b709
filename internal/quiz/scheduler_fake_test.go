package quiz_test

import (
	"time"

	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

type fakeTimer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualScheduler fires callbacks only when the test moves the clock.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) quiz.Timer {
	s.seq++
	t := &fakeTimer{at: s.now + d, seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		next := s.next(end)
		if next == nil {
			break
		}
		s.now = next.at
		next.stopped = true
		next.fn()
	}
	s.now = end
}

func (s *manualScheduler) next(end time.Duration) *fakeTimer {
	var best *fakeTimer
	for _, t := range s.timers {
		if t.stopped || t.at > end {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *manualScheduler) active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
