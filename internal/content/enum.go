package content

type Mode string

const (
	ModeQuick         Mode = "quick"
	ModeComprehensive Mode = "comprehensive"
)

var AllModes = []Mode{
	ModeQuick,
	ModeComprehensive,
}

func (m Mode) IsValid() bool {
	for _, v := range AllModes {
		if m == v {
			return true
		}
	}
	return false
}
