package assistant

import "strings"

// Rule names the step of the reply ladder that produced an answer.
type Rule string

const (
	RuleAttribution Rule = "attribution"
	RuleTopic       Rule = "topic"
	RuleFallback    Rule = "fallback"
	RuleGeneric     Rule = "generic"
)

// Match is a selected reply with its provenance. Key is the topic key or
// fallback name, empty for the generic reply.
type Match struct {
	Rule Rule   `json:"rule"`
	Key  string `json:"key,omitempty"`
	Text string `json:"-"`
}

type rule func(normalized string) (Match, bool)

// Selector picks one canned reply for a message. It holds no mutable state.
type Selector struct {
	kb    *KnowledgeBase
	rules []rule
}

func NewSelector(kb *KnowledgeBase) *Selector {
	s := &Selector{kb: kb}
	s.rules = []rule{
		s.attribution,
		s.topicScan,
		s.fallback,
	}
	return s
}

func (s *Selector) KnowledgeBase() *KnowledgeBase {
	return s.kb
}

// Select returns the reply text for input. It never returns an empty string
// as long as the knowledge base texts are non-empty.
func (s *Selector) Select(input string) string {
	return s.Match(input).Text
}

func (s *Selector) Match(input string) Match {
	normalized := strings.ToLower(input)

	for _, r := range s.rules {
		if m, ok := r(normalized); ok {
			return m
		}
	}

	return Match{Rule: RuleGeneric, Text: s.kb.generic(input)}
}

func (s *Selector) attribution(normalized string) (Match, bool) {
	if s.kb.featuredKey == "" || !containsAny(normalized, s.kb.featuredCues) {
		return Match{}, false
	}
	t := s.kb.topics[s.kb.index[s.kb.featuredKey]]
	return Match{Rule: RuleAttribution, Key: t.Key, Text: t.Response}, true
}

func (s *Selector) topicScan(normalized string) (Match, bool) {
	for _, t := range s.kb.topics {
		if strings.Contains(normalized, t.Key) || containsAny(normalized, t.Cues) {
			return Match{Rule: RuleTopic, Key: t.Key, Text: t.Response}, true
		}
	}
	return Match{}, false
}

func (s *Selector) fallback(normalized string) (Match, bool) {
	for _, f := range s.kb.fallbacks {
		if containsAny(normalized, f.Cues) {
			return Match{Rule: RuleFallback, Key: f.Name, Text: f.Text}, true
		}
	}
	return Match{}, false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
