package content

import "github.com/saulo-duarte/statbook-lambda/internal/quiz"

// GameResponse is the public view of a game. Questions are never listed here
// since they carry the answers.
type GameResponse struct {
	Slug             string   `json:"slug"`
	Chapter          int      `json:"chapter"`
	Path             string   `json:"path"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	QuestionCount    int      `json:"question_count"`
	QuickCount       int      `json:"quick_count"`
	TimeLimitSeconds int      `json:"time_limit_seconds,omitempty"`
	RetryIncorrect   bool     `json:"retry_incorrect"`
	Modes            []Mode   `json:"modes"`
	Kinds            []string `json:"kinds"`
}

func ToGameResponse(g Game) GameResponse {
	seen := map[string]bool{}
	var kinds []string
	for _, q := range g.Questions {
		k := string(q.Kind)
		if k == "" {
			k = string(quiz.KindChoice)
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}

	return GameResponse{
		Slug:             g.Slug,
		Chapter:          g.Chapter,
		Path:             g.Path,
		Title:            g.Title,
		Description:      g.Description,
		QuestionCount:    len(g.Questions),
		QuickCount:       quickCount(g),
		TimeLimitSeconds: g.TimeLimitSeconds,
		RetryIncorrect:   g.RetryIncorrect,
		Modes:            AllModes,
		Kinds:            kinds,
	}
}
