package activity

type Action string

const (
	ActionPageView     Action = "page_view"
	ActionClick        Action = "click"
	ActionQuizStart    Action = "quiz_start"
	ActionQuizAnswer   Action = "quiz_answer"
	ActionQuizComplete Action = "quiz_complete"
	ActionHint         Action = "hint"
)

var AllActions = []Action{
	ActionPageView,
	ActionClick,
	ActionQuizStart,
	ActionQuizAnswer,
	ActionQuizComplete,
	ActionHint,
}

func (a Action) IsValid() bool {
	for _, v := range AllActions {
		if a == v {
			return true
		}
	}
	return false
}
