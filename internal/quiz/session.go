package quiz

// Session is the run-time state of one quiz attempt. Runner hands out copies;
// the only way to change a session is through Runner's transitions.
type Session struct {
	State     State     `json:"state"`
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"max_score"`
	Correct   int       `json:"correct"`
	Answered  int       `json:"answered"`
	Timed     bool      `json:"timed"`
	Remaining int       `json:"remaining_seconds"`
	Elapsed   int       `json:"elapsed_seconds"`
	Selection Selection `json:"selection"`
	Feedback  *Feedback `json:"feedback,omitempty"`
	EndReason EndReason `json:"end_reason,omitempty"`
}

func newSession(bank []Question, budgetSeconds int) Session {
	maxScore := 0
	for _, q := range bank {
		maxScore += q.Worth()
	}
	return Session{
		State:     StateNotStarted,
		Total:     len(bank),
		MaxScore:  maxScore,
		Timed:     budgetSeconds > 0,
		Remaining: budgetSeconds,
	}
}

func (s Session) clone() Session {
	out := s
	out.Selection = s.Selection.clone()
	if s.Feedback != nil {
		fb := *s.Feedback
		out.Feedback = &fb
	}
	return out
}

// Ended reports whether the session reached its terminal state.
func (s Session) Ended() bool {
	return s.State == StateEnded
}
