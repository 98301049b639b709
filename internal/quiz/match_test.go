package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

func TestMatcher(t *testing.T) {
	m := quiz.NewMatcher()

	code := quiz.Question{
		ID:          "vec",
		Prompt:      "Create a vector with 1, 2 and 3",
		Kind:        quiz.KindText,
		Answer:      "c(1,2,3)||c(1:3)",
		IgnoreSpace: true,
	}
	trimmed := quiz.Question{
		ID:     "sum",
		Prompt: "What does 2 + 3 print?",
		Kind:   quiz.KindText,
		Answer: "[1] 5",
	}
	folded := quiz.Question{
		ID:       "fn",
		Prompt:   "Name the function that computes the median",
		Kind:     quiz.KindText,
		Answer:   "median",
		Accepted: []string{"median()"},
		FoldCase: true,
	}
	mapping := quiz.Question{
		ID:     "types",
		Prompt: "Drag each variable to its type",
		Kind:   quiz.KindMapping,
		Mapping: map[string]string{
			"Age":    "Quantitative",
			"Major":  "Categorical",
			"Rating": "Ordinal",
		},
	}

	tests := []struct {
		name string
		q    quiz.Question
		sel  quiz.Selection
		want bool
	}{
		{"choice exact", choice("1", "positive", 1), quiz.Selection{Value: "positive"}, true},
		{"choice is case sensitive", choice("1", "positive", 1), quiz.Selection{Value: "Positive"}, false},
		{"code ignores spaces", code, quiz.Selection{Value: " c( 1, 2, 3 ) "}, true},
		{"code second alternative", code, quiz.Selection{Value: "c(1 : 3)"}, true},
		{"code wrong", code, quiz.Selection{Value: "c(3,2,1)"}, false},
		{"trimmed keeps inner spaces", trimmed, quiz.Selection{Value: "  [1] 5\n"}, true},
		{"trimmed rejects collapsed", trimmed, quiz.Selection{Value: "[1]5"}, false},
		{"folded case", folded, quiz.Selection{Value: "MEDIAN()"}, true},
		{"mapping complete", mapping, quiz.Selection{Pairs: map[string]string{"Age": "Quantitative", "Major": "Categorical", "Rating": "Ordinal"}}, true},
		{"mapping partial", mapping, quiz.Selection{Pairs: map[string]string{"Age": "Quantitative", "Major": "Categorical"}}, false},
		{"mapping swapped", mapping, quiz.Selection{Pairs: map[string]string{"Age": "Categorical", "Major": "Quantitative", "Rating": "Ordinal"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.q, tt.sel); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunnerMappingQuestion(t *testing.T) {
	q := quiz.Question{
		ID:          "types",
		Prompt:      "Drag each variable to its type",
		Kind:        quiz.KindMapping,
		Mapping:     map[string]string{"Age": "Quantitative", "Major": "Categorical"},
		Explanation: "Age is measured, major is a label.",
	}
	r, _ := newRunner(t, []quiz.Question{q}, quiz.Options{ManualAdvance: true})

	r.Start()
	r.SelectPair("Age", "Categorical")
	r.SelectPair("Age", "Quantitative")
	r.SelectPair("Major", "Categorical")

	fb, ok := r.Submit()
	if !ok || !fb.Correct {
		t.Fatalf("Submit = %+v, %v", fb, ok)
	}
	if fb.Selected != "Age → Quantitative, Major → Categorical" {
		t.Errorf("Selected = %q", fb.Selected)
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := quiz.NormalizeCode(" x <- c(1, 2) ", true, false); got != "x<-c(1,2)" {
		t.Errorf("NormalizeCode ignoring spaces = %q", got)
	}
	if got := quiz.NormalizeCode("  Mean(X) ", false, true); got != "mean(x)" {
		t.Errorf("NormalizeCode folding case = %q", got)
	}
}
