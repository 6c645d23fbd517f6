package router

import (
	"strings"
)

// keywordMatcher performs ordered, case-insensitive substring matching
// of a topic against a fixed rule list. Rules are checked in list
// order; overlapping keywords resolve to whichever appears first.
type keywordMatcher struct {
	rules []compiledRule
}

type compiledRule struct {
	rule    Rule
	lowered string
}

func newKeywordMatcher(rules []Rule) *keywordMatcher {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		compiled = append(compiled, compiledRule{
			rule:    r,
			lowered: strings.ToLower(r.Keyword),
		})
	}
	return &keywordMatcher{rules: compiled}
}

// match returns the first rule whose keyword occurs in topic.
func (m *keywordMatcher) match(topic string) (Rule, bool) {
	if m == nil || len(m.rules) == 0 || topic == "" {
		return Rule{}, false
	}
	lowered := strings.ToLower(topic)
	for _, c := range m.rules {
		if strings.Contains(lowered, c.lowered) {
			return c.rule, true
		}
	}
	return Rule{}, false
}
