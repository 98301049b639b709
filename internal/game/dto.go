package game

import (
	"sort"

	"github.com/google/uuid"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
)

type StartDTO struct {
	Mode    content.Mode `json:"mode"`
	Shuffle bool         `json:"shuffle"`
}

type PracticeDTO struct {
	Topic            string            `json:"topic"`
	Difficulty       aiquiz.Difficulty `json:"difficulty"`
	Count            int               `json:"count"`
	Context          string            `json:"context,omitempty"`
	TimeLimitSeconds int               `json:"time_limit_seconds,omitempty"`
}

// SelectDTO picks a choice or types an answer. Mapping questions send one
// key at a time; an empty value takes the item back.
type SelectDTO struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

// QuestionView is the question in play without its answer.
type QuestionView struct {
	ID      string    `json:"id"`
	Prompt  string    `json:"prompt"`
	Kind    quiz.Kind `json:"kind"`
	Choices []string  `json:"choices,omitempty"`
	Items   []string  `json:"items,omitempty"`
	Targets []string  `json:"targets,omitempty"`
	Points  int       `json:"points"`
	HasHint bool      `json:"has_hint"`
	Aux     *quiz.Aux `json:"aux,omitempty"`
}

type SessionView struct {
	ID             uuid.UUID     `json:"id"`
	Game           string        `json:"game"`
	Title          string        `json:"title"`
	Mode           content.Mode  `json:"mode"`
	Session        quiz.Session  `json:"session"`
	Question       *QuestionView `json:"question,omitempty"`
	Effects        []quiz.Burst  `json:"effects"`
	RemainingClock string        `json:"remaining_clock,omitempty"`
	ElapsedClock   string        `json:"elapsed_clock"`
}

// ActionResponse answers a transition request. Accepted is false when the
// request did not apply in the current state; the session is returned as is.
type ActionResponse struct {
	Accepted bool        `json:"accepted"`
	View     SessionView `json:"view"`
}

type SummaryView struct {
	ID           uuid.UUID    `json:"id"`
	Game         string       `json:"game"`
	Title        string       `json:"title"`
	Summary      quiz.Summary `json:"summary"`
	ElapsedClock string       `json:"elapsed_clock"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

func toQuestionView(q quiz.Question) *QuestionView {
	v := &QuestionView{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Kind:    q.Kind,
		Points:  q.Worth(),
		HasHint: q.Hint != "",
		Aux:     q.Aux,
	}
	if v.Kind == "" {
		v.Kind = quiz.KindChoice
	}

	switch v.Kind {
	case quiz.KindChoice:
		v.Choices = append([]string(nil), q.Choices...)
	case quiz.KindMapping:
		seen := map[string]bool{}
		for item, target := range q.Mapping {
			v.Items = append(v.Items, item)
			if !seen[target] {
				seen[target] = true
				v.Targets = append(v.Targets, target)
			}
		}
		sort.Strings(v.Items)
		sort.Strings(v.Targets)
	}
	return v
}

func toSessionView(s *Session, snap quiz.Session, q quiz.Question, inPlay bool) SessionView {
	v := SessionView{
		ID:           s.ID,
		Game:         s.Game,
		Title:        s.Title,
		Mode:         s.Mode,
		Session:      snap,
		Effects:      s.drainEffects(),
		ElapsedClock: util.FormatClock(snap.Elapsed),
	}
	if v.Effects == nil {
		v.Effects = []quiz.Burst{}
	}
	if inPlay {
		v.Question = toQuestionView(q)
	}
	if snap.Timed {
		v.RemainingClock = util.FormatClock(snap.Remaining)
	}
	return v
}
