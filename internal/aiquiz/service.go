package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

var (
	ErrTopicRequired       = errors.New("topic required")
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrNoValidQuestions    = errors.New("model returned no usable questions")
	ErrProviderUnavailable = errors.New("question generator unavailable")
)

var letterPrefix = regexp.MustCompile(`^[A-Da-d][).:]\s*`)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]quiz.Question, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]quiz.Question, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrTopicRequired
	}
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}
	if !req.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, req.Difficulty)
	}
	req.Count = ClampCount(req.Count)

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	log := config.WithContext(ctx)
	bank := make([]quiz.Question, 0, req.Count)
	for _, g := range generated {
		q := ToQuestion(len(bank)+1, g)
		if err := q.Validate(); err != nil {
			log.WithError(err).Warn("[AIQUIZ] Dropping unusable question")
			continue
		}
		bank = append(bank, q)
		if len(bank) == req.Count {
			break
		}
	}

	if len(bank) == 0 {
		return nil, ErrNoValidQuestions
	}
	return bank, nil
}

// ToQuestion converts model output into a choice question. Letter prefixes
// are stripped and a bare letter answer is resolved to its choice.
func ToQuestion(n int, g GeneratedQuestion) quiz.Question {
	choices := make([]string, 0, len(g.Choices))
	for _, c := range g.Choices {
		choices = append(choices, strings.TrimSpace(letterPrefix.ReplaceAllString(strings.TrimSpace(c), "")))
	}

	answer := strings.TrimSpace(g.Answer)
	if len(answer) == 1 {
		if i := int(strings.ToUpper(answer)[0] - 'A'); i >= 0 && i < len(choices) {
			answer = choices[i]
		}
	} else {
		answer = strings.TrimSpace(letterPrefix.ReplaceAllString(answer, ""))
	}

	return quiz.Question{
		ID:          fmt.Sprintf("ai-%d", n),
		Prompt:      strings.TrimSpace(g.Question),
		Kind:        quiz.KindChoice,
		Choices:     choices,
		Answer:      answer,
		Explanation: g.Explanation,
		Hint:        g.Hint,
	}
}
