package quiz

import "strings"

// Feedback is the payload displayed after a submission.
type Feedback struct {
	Correct       bool   `json:"correct"`
	Icon          string `json:"icon"`
	Heading       string `json:"heading"`
	Explanation   string `json:"explanation"`
	Selected      string `json:"selected"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

const (
	IconCorrect      = "✓"
	IconIncorrect    = "✗"
	HeadingCorrect   = "Correct!"
	HeadingIncorrect = "Not Quite Right"
)

// Present builds the feedback for a graded submission. The correct answer is
// only revealed when the selection was wrong.
func Present(q Question, sel Selection, correct bool) Feedback {
	fb := Feedback{
		Correct:     correct,
		Explanation: q.Explanation,
		Selected:    describeSelection(q, sel),
	}
	if correct {
		fb.Icon = IconCorrect
		fb.Heading = HeadingCorrect
		return fb
	}
	fb.Icon = IconIncorrect
	fb.Heading = HeadingIncorrect
	fb.CorrectAnswer = q.CorrectText()
	return fb
}

func describeSelection(q Question, sel Selection) string {
	if q.kind() != KindMapping {
		return sel.Value
	}
	keys := sortedKeys(sel.Pairs)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" → "+sel.Pairs[k])
	}
	return strings.Join(parts, ", ")
}
