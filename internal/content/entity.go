package content

import (
	"time"

	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

type Topic struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

type Chapter struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Slug   string  `json:"slug"`
	Topics []Topic `json:"topics"`
}

// NavigationInfo drives the prev/next links of a chapter page.
type NavigationInfo struct {
	ChapterHome       string `json:"chapter_home"`
	ChapterTitle      string `json:"chapter_title"`
	CurrentTopicTitle string `json:"current_topic_title,omitempty"`
	PreviousTopic     string `json:"previous_topic,omitempty"`
	NextTopic         string `json:"next_topic,omitempty"`
}

// Game is one quiz game of the textbook together with its content bank.
type Game struct {
	Slug             string          `json:"slug"`
	Chapter          int             `json:"chapter"`
	Path             string          `json:"path"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	QuickCount       int             `json:"quick_count,omitempty"`
	DwellMillis      int             `json:"dwell_ms,omitempty"`
	TimeLimitSeconds int             `json:"time_limit_seconds,omitempty"`
	RetryIncorrect   bool            `json:"retry_incorrect,omitempty"`
	ManualAdvance    bool            `json:"manual_advance,omitempty"`
	Grading          quiz.Grading    `json:"grading"`
	Questions        []quiz.Question `json:"questions"`
}

func (g Game) Dwell() time.Duration {
	return time.Duration(g.DwellMillis) * time.Millisecond
}

func (g Game) TimeBudget() time.Duration {
	return time.Duration(g.TimeLimitSeconds) * time.Second
}

// RunnerOptions maps the game settings onto runner options. Collaborators
// (scheduler, celebrator, observers) are left for the caller to fill in.
func (g Game) RunnerOptions() quiz.Options {
	return quiz.Options{
		Dwell:          g.Dwell(),
		ManualAdvance:  g.ManualAdvance,
		TimeBudget:     g.TimeBudget(),
		RetryIncorrect: g.RetryIncorrect,
		Grading:        g.Grading,
	}
}
