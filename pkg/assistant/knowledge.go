package assistant

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Topic is one knowledge-base entry. Key is itself a trigger phrase; Cues are
// additional phrases selecting the same reply.
type Topic struct {
	Key      string   `json:"key"`
	Response string   `json:"response"`
	Cues     []string `json:"cues"`
}

// Fallback is a heuristic reply used only when no topic matched.
type Fallback struct {
	Name string   `json:"name"`
	Cues []string `json:"cues"`
	Text string   `json:"-"`
}

var (
	ErrEmptyKey          = errors.New("topic key is empty")
	ErrKeyNotLowercase   = errors.New("topic key must be lowercase")
	ErrDuplicateKey      = errors.New("duplicate topic key")
	ErrInvalidCue        = errors.New("cue must be non-empty and lowercase")
	ErrUnknownFeatured   = errors.New("featured topic is not in the knowledge base")
	ErrEmptyFallbackText = errors.New("fallback text is empty")
)

// KnowledgeBase is the immutable, ordered set of topics and fallbacks a
// Selector answers from. It is safe to share between goroutines.
type KnowledgeBase struct {
	topics       []Topic
	index        map[string]int
	featuredKey  string
	featuredCues []string
	fallbacks    []Fallback
	generic      func(input string) string
}

type Option func(*KnowledgeBase)

// WithFeatured designates a topic reachable through its own attribution cues,
// checked before any other topic.
func WithFeatured(key string, cues ...string) Option {
	return func(kb *KnowledgeBase) {
		kb.featuredKey = key
		kb.featuredCues = append([]string(nil), cues...)
	}
}

func WithFallbacks(fallbacks ...Fallback) Option {
	return func(kb *KnowledgeBase) {
		kb.fallbacks = make([]Fallback, len(fallbacks))
		for i, f := range fallbacks {
			f.Cues = append([]string(nil), f.Cues...)
			kb.fallbacks[i] = f
		}
	}
}

// WithGenericReply replaces the catch-all reply builder. It receives the raw,
// non-normalized user input.
func WithGenericReply(fn func(input string) string) Option {
	return func(kb *KnowledgeBase) {
		kb.generic = fn
	}
}

func NewKnowledgeBase(topics []Topic, opts ...Option) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		topics:  make([]Topic, 0, len(topics)),
		index:   make(map[string]int, len(topics)),
		generic: GenericReply,
	}

	for _, t := range topics {
		if t.Key == "" {
			return nil, ErrEmptyKey
		}
		if t.Key != strings.ToLower(t.Key) {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotLowercase, t.Key)
		}
		if _, dup := kb.index[t.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, t.Key)
		}
		if err := validateCues(t.Cues); err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.Key, err)
		}

		t.Cues = append([]string(nil), t.Cues...)
		kb.index[t.Key] = len(kb.topics)
		kb.topics = append(kb.topics, t)
	}

	for _, opt := range opts {
		opt(kb)
	}

	if kb.featuredKey != "" {
		if _, ok := kb.index[kb.featuredKey]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeatured, kb.featuredKey)
		}
		if err := validateCues(kb.featuredCues); err != nil {
			return nil, fmt.Errorf("featured topic %q: %w", kb.featuredKey, err)
		}
	}

	for _, f := range kb.fallbacks {
		if f.Text == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyFallbackText, f.Name)
		}
		if err := validateCues(f.Cues); err != nil {
			return nil, fmt.Errorf("fallback %q: %w", f.Name, err)
		}
	}

	if kb.generic == nil {
		kb.generic = GenericReply
	}

	return kb, nil
}

func validateCues(cues []string) error {
	for _, c := range cues {
		if c == "" || c != strings.ToLower(c) {
			return fmt.Errorf("%w: %q", ErrInvalidCue, c)
		}
	}
	return nil
}

// Topics returns a copy of the topics in declaration order.
func (kb *KnowledgeBase) Topics() []Topic {
	out := make([]Topic, len(kb.topics))
	for i, t := range kb.topics {
		t.Cues = append([]string(nil), t.Cues...)
		out[i] = t
	}
	return out
}

func (kb *KnowledgeBase) Topic(key string) (Topic, bool) {
	i, ok := kb.index[key]
	if !ok {
		return Topic{}, false
	}
	t := kb.topics[i]
	t.Cues = append([]string(nil), t.Cues...)
	return t, true
}

// Featured returns the featured topic key and its attribution cues. The key
// is empty when none was configured.
func (kb *KnowledgeBase) Featured() (string, []string) {
	return kb.featuredKey, append([]string(nil), kb.featuredCues...)
}

func (kb *KnowledgeBase) Fallbacks() []Fallback {
	out := make([]Fallback, len(kb.fallbacks))
	for i, f := range kb.fallbacks {
		f.Cues = append([]string(nil), f.Cues...)
		out[i] = f
	}
	return out
}

// GenericReply is the catch-all answer. The input is echoed verbatim.
func GenericReply(input string) string {
	return fmt.Sprintf(genericReplyFormat, input)
}

const (
	FeaturedTopic   = "frontend"
	FallbackComplex = "complexity"
	FallbackLangs   = "languages"
)

var (
	// Cues asking who built the assistant.
	IdentityCues = []string{
		"who made", "who created", "who built", "who developed",
		"developer", "author", "creator", "made this", "created this",
		"built this", "developed this",
	}

	// Cues asking about the app or its UI.
	ProductCues = []string{
		"frontend", "front end", "ui/ux", "gui", "interface",
		"design", "this app", "this application", "website", "web app",
	}
)

// DefaultTopics returns the built-in topics in their matching order.
func DefaultTopics() []Topic {
	return []Topic{
		{
			Key:      "algorithms",
			Response: algorithmsReply,
			Cues:     []string{"binary search", "quick sort", "dynamic programming"},
		},
		{
			Key:      "data structures",
			Response: dataStructuresReply,
			Cues:     []string{"arrays vs linked lists", "hash table implementation", "tree traversal"},
		},
		{
			Key:      "machine learning",
			Response: machineLearningReply,
			Cues:     []string{"neural networks", "linear regression", "clustering algorithms"},
		},
		{
			Key:      "cloud computing",
			Response: cloudComputingReply,
			Cues:     []string{"aws services", "cloud deployment", "serverless computing"},
		},
		{
			Key:      "cybersecurity",
			Response: cybersecurityReply,
			Cues:     []string{"encryption", "network security", "vulnerability assessment"},
		},
		{
			Key:      FeaturedTopic,
			Response: frontendReply,
			Cues: []string{
				"frontend", "front end", "ui/ux", "gui", "user interface",
				"who made this", "developer", "who created this", "who built this",
			},
		},
	}
}

// DefaultFallbacks returns the heuristic replies tried after the topic scan.
// "java" also matches inside "javascript"; both land on the same reply.
func DefaultFallbacks() []Fallback {
	return []Fallback{
		{Name: FallbackComplex, Cues: []string{"time complexity", "big o"}, Text: complexityReply},
		{Name: FallbackLangs, Cues: []string{"python", "javascript", "java"}, Text: languagesReply},
	}
}

var (
	defaultOnce sync.Once
	defaultKB   *KnowledgeBase
)

// Default returns the built-in knowledge base, constructed once per process.
func Default() *KnowledgeBase {
	defaultOnce.Do(func() {
		attribution := append(append([]string(nil), IdentityCues...), ProductCues...)
		kb, err := NewKnowledgeBase(
			DefaultTopics(),
			WithFeatured(FeaturedTopic, attribution...),
			WithFallbacks(DefaultFallbacks()...),
		)
		if err != nil {
			panic(fmt.Sprintf("assistant: invalid built-in knowledge base: %v", err))
		}
		defaultKB = kb
	})
	return defaultKB
}
