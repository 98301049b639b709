package quiz

import (
	"sort"
	"strings"
	"unicode"
)

// Selection is the learner's tentative answer for the current question.
// Choice and text questions use Value, mapping questions use Pairs.
type Selection struct {
	Value string            `json:"value,omitempty"`
	Pairs map[string]string `json:"pairs,omitempty"`
}

func (s Selection) Empty() bool {
	return strings.TrimSpace(s.Value) == "" && len(s.Pairs) == 0
}

func (s Selection) clone() Selection {
	out := Selection{Value: s.Value}
	if len(s.Pairs) > 0 {
		out.Pairs = make(map[string]string, len(s.Pairs))
		for k, v := range s.Pairs {
			out.Pairs[k] = v
		}
	}
	return out
}

// Matcher decides whether a selection answers a question.
type Matcher interface {
	Match(q Question, sel Selection) bool
}

type MatcherFunc func(q Question, sel Selection) bool

func (f MatcherFunc) Match(q Question, sel Selection) bool { return f(q, sel) }

type defaultMatcher struct {
	byKind map[Kind]Matcher
}

// NewMatcher routes a question to the strategy for its kind.
func NewMatcher() Matcher {
	return &defaultMatcher{
		byKind: map[Kind]Matcher{
			KindChoice:  MatcherFunc(matchChoice),
			KindText:    MatcherFunc(matchText),
			KindMapping: MatcherFunc(matchMapping),
		},
	}
}

func (m *defaultMatcher) Match(q Question, sel Selection) bool {
	s, ok := m.byKind[q.kind()]
	if !ok {
		return false
	}
	return s.Match(q, sel)
}

func matchChoice(q Question, sel Selection) bool {
	return sel.Value == q.Answer
}

func matchText(q Question, sel Selection) bool {
	got := NormalizeCode(sel.Value, q.IgnoreSpace, q.FoldCase)
	for _, a := range q.answers() {
		if got == NormalizeCode(a, q.IgnoreSpace, q.FoldCase) {
			return true
		}
	}
	return false
}

func matchMapping(q Question, sel Selection) bool {
	for k, want := range q.Mapping {
		if sel.Pairs[k] != want {
			return false
		}
	}
	return true
}

// NormalizeCode prepares free-text code answers for comparison.
func NormalizeCode(s string, ignoreSpaces, foldCase bool) string {
	if ignoreSpaces {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	} else {
		s = strings.TrimSpace(s)
	}
	if foldCase {
		s = strings.ToLower(s)
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
