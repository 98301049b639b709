package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

// Session is one hosted quiz attempt. The runner owns the quiz state; the
// session adds what the HTTP client needs around it.
type Session struct {
	ID      uuid.UUID
	Game    string
	Title   string
	Mode    content.Mode
	Page    string
	NetID   string
	Grading quiz.Grading

	runner *quiz.Runner

	mu       sync.Mutex
	effects  []quiz.Burst
	lastSeen time.Time
	reported bool
}

// Celebrate queues a burst until the client next fetches the session.
func (s *Session) Celebrate(b quiz.Burst) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects = append(s.effects, b)
}

func (s *Session) drainEffects() []quiz.Burst {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.effects
	s.effects = nil
	return out
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// markEnded reports whether this end of the attempt has not been seen yet.
// Any non-ended snapshot re-arms it for the next attempt.
func (s *Session) markEnded(snap quiz.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !snap.Ended() {
		s.reported = false
		return false
	}
	if s.reported {
		return false
	}
	s.reported = true
	return true
}

func (s *Session) Runner() *quiz.Runner {
	return s.runner
}
