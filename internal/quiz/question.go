package quiz

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindChoice  Kind = "choice"
	KindText    Kind = "text"
	KindMapping Kind = "mapping"
)

var AllKinds = []Kind{
	KindChoice,
	KindText,
	KindMapping,
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}

var (
	ErrEmptyBank       = errors.New("content bank has no questions")
	ErrInvalidQuestion = errors.New("invalid question")
)

// Aux carries the optional payload shown next to a prompt.
type Aux struct {
	Table   [][]string  `json:"table,omitempty"`
	Image   string      `json:"image,omitempty"`
	Dataset []float64   `json:"dataset,omitempty"`
	Points  []DataPoint `json:"points,omitempty"`
}

type DataPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Question struct {
	ID          string            `json:"id"`
	Prompt      string            `json:"prompt"`
	Kind        Kind              `json:"kind"`
	Choices     []string          `json:"choices,omitempty"`
	Answer      string            `json:"answer,omitempty"`
	Accepted    []string          `json:"accepted,omitempty"`
	IgnoreSpace bool              `json:"ignore_spaces,omitempty"`
	FoldCase    bool              `json:"fold_case,omitempty"`
	Mapping     map[string]string `json:"mapping,omitempty"`
	Points      int               `json:"points,omitempty"`
	Explanation string            `json:"explanation"`
	Hint        string            `json:"hint,omitempty"`
	Aux         *Aux              `json:"aux,omitempty"`
}

// Worth is the score a correct answer adds. Unset points count as one.
func (q Question) Worth() int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

// CorrectText renders the expected answer for feedback.
func (q Question) CorrectText() string {
	if q.Kind == KindMapping {
		keys := sortedKeys(q.Mapping)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" → "+q.Mapping[k])
		}
		return strings.Join(parts, ", ")
	}
	answers := q.answers()
	if len(answers) == 0 {
		return ""
	}
	return answers[0]
}

func (q Question) kind() Kind {
	if q.Kind == "" {
		return KindChoice
	}
	return q.Kind
}

func (q Question) hasChoice(value string) bool {
	for _, c := range q.Choices {
		if c == value {
			return true
		}
	}
	return false
}

// answers expands Answer ("a||b") plus Accepted into the accepted set.
func (q Question) answers() []string {
	var out []string
	for _, a := range strings.Split(q.Answer, "||") {
		if a != "" {
			out = append(out, a)
		}
	}
	return append(out, q.Accepted...)
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w %q: empty prompt", ErrInvalidQuestion, q.ID)
	}
	switch q.kind() {
	case KindChoice:
		if len(q.Choices) == 0 {
			return fmt.Errorf("%w %q: no choices", ErrInvalidQuestion, q.ID)
		}
		if q.hasChoice(q.Answer) {
			return nil
		}
		return fmt.Errorf("%w %q: answer %q is not one of the choices", ErrInvalidQuestion, q.ID, q.Answer)
	case KindText:
		if len(q.answers()) == 0 {
			return fmt.Errorf("%w %q: no accepted answer", ErrInvalidQuestion, q.ID)
		}
	case KindMapping:
		if len(q.Mapping) == 0 {
			return fmt.Errorf("%w %q: empty mapping", ErrInvalidQuestion, q.ID)
		}
	default:
		return fmt.Errorf("%w %q: unknown kind %q", ErrInvalidQuestion, q.ID, q.Kind)
	}
	return nil
}

// ValidateBank checks every question of a content bank.
func ValidateBank(bank []Question) error {
	if len(bank) == 0 {
		return ErrEmptyBank
	}
	for _, q := range bank {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
