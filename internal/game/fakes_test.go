package game

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualClock is a quiz.Scheduler driven by the test.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) quiz.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.at > end {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = end
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.stopped = true
		c.mu.Unlock()

		next.fn()
	}
}

type trackedVisit struct {
	netID string
	dto   activity.TrackDTO
}

type fakeTracker struct {
	mu     sync.Mutex
	visits []trackedVisit
}

func (f *fakeTracker) Record(_ context.Context, netID string, dto activity.TrackDTO) (*activity.Visit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, trackedVisit{netID: netID, dto: dto})
	return &activity.Visit{Action: dto.Action}, nil
}

func (f *fakeTracker) actions() []activity.Action {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]activity.Action, 0, len(f.visits))
	for _, v := range f.visits {
		out = append(out, v.dto.Action)
	}
	return out
}

func (f *fakeTracker) completion() (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.visits {
		if v.dto.Action == activity.ActionQuizComplete {
			var meta map[string]any
			json.Unmarshal(v.dto.Metadata, &meta)
			return meta, true
		}
	}
	return nil, false
}

type fakeGenerator struct {
	bank []quiz.Question
	err  error
}

func (f *fakeGenerator) GenerateQuestions(_ context.Context, req aiquiz.QuestionRequest) ([]quiz.Question, error) {
	if req.Topic == "" {
		return nil, aiquiz.ErrTopicRequired
	}
	return f.bank, f.err
}
