package quiz

import (
	"math"
	"sort"
)

// Tier is a qualitative band selected when accuracy reaches Min.
type Tier struct {
	Min     int    `json:"min"`
	Label   string `json:"label"`
	Message string `json:"message,omitempty"`
}

var DefaultTiers = []Tier{
	{Min: 85, Label: "Excellent", Message: "Excellent mastery of these concepts!"},
	{Min: 70, Label: "Great Work", Message: "Solid understanding with room to polish."},
	{Min: 50, Label: "Good Progress", Message: "You're getting there, review the explanations."},
	{Min: 0, Label: "Keep Learning", Message: "Revisit the chapter and try again."},
}

const DefaultPassMark = 70

type Grading struct {
	Tiers    []Tier `json:"tiers,omitempty"`
	PassMark int    `json:"pass_mark,omitempty"`
}

type Summary struct {
	Score        int       `json:"score"`
	MaxScore     int       `json:"max_score"`
	Correct      int       `json:"correct"`
	Answered     int       `json:"answered"`
	Total        int       `json:"total"`
	Accuracy     int       `json:"accuracy"`
	ScorePercent int       `json:"score_percent"`
	Elapsed      int       `json:"elapsed_seconds"`
	Tier         Tier      `json:"tier"`
	Passed       bool      `json:"passed"`
	EndReason    EndReason `json:"end_reason,omitempty"`
}

// Summarize derives the end-of-session metrics. It never mutates s.
func Summarize(s Session, g Grading) Summary {
	sum := Summary{
		Score:        s.Score,
		MaxScore:     s.MaxScore,
		Correct:      s.Correct,
		Answered:     s.Answered,
		Total:        s.Total,
		Accuracy:     Percent(s.Correct, s.Answered),
		ScorePercent: Percent(s.Score, s.MaxScore),
		Elapsed:      s.Elapsed,
		EndReason:    s.EndReason,
	}
	sum.Tier = TierFor(sum.Accuracy, g.Tiers)

	pass := g.PassMark
	if pass <= 0 {
		pass = DefaultPassMark
	}
	sum.Passed = sum.Accuracy >= pass
	return sum
}

// Percent returns part/whole*100 rounded to the nearest integer, clamped to [0,100].
func Percent(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	p := int(math.Round(float64(part) * 100 / float64(whole)))
	if p > 100 {
		return 100
	}
	return p
}

// TierFor picks the highest tier whose threshold accuracy reaches.
func TierFor(accuracy int, tiers []Tier) Tier {
	if len(tiers) == 0 {
		tiers = DefaultTiers
	}
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })

	for _, t := range sorted {
		if accuracy >= t.Min {
			return t
		}
	}
	return sorted[len(sorted)-1]
}
