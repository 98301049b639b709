package quiz

type State string

const (
	StateNotStarted      State = "NOT_STARTED"
	StateAnswering       State = "ANSWERING"
	StateShowingFeedback State = "SHOWING_FEEDBACK"
	StateEnded           State = "ENDED"
)

var AllStates = []State{
	StateNotStarted,
	StateAnswering,
	StateShowingFeedback,
	StateEnded,
}

func (s State) IsValid() bool {
	for _, v := range AllStates {
		if s == v {
			return true
		}
	}
	return false
}

// InProgress reports whether the session clock is running.
func (s State) InProgress() bool {
	return s == StateAnswering || s == StateShowingFeedback
}

type EndReason string

const (
	EndNone      EndReason = ""
	EndCompleted EndReason = "COMPLETED"
	EndTimeUp    EndReason = "TIME_UP"
)
