package lesson

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Completeness thresholds.
const (
	MinArticleRunes = 80 // article body must be strictly longer
	MinVocabulary   = 5
	MinQuiz         = 5
)

// ArticleLength is the rune count of the English paragraphs joined by
// blank lines.
func ArticleLength(c LessonContent) int {
	return utf8.RuneCountInString(strings.Join(c.Article.ParagraphsEn, "\n\n"))
}

// IsComplete reports whether c has a real article and full vocabulary and
// quiz lists.
func IsComplete(c LessonContent) bool {
	return ArticleLength(c) > MinArticleRunes &&
		len(c.Vocabulary) >= MinVocabulary &&
		len(c.Quiz) >= MinQuiz
}

// Gate decides whether a provider result is accepted by the chain.
// Implementations should be stateless and safe for concurrent use.
type Gate interface {
	// Name returns a short identifier, e.g. "complete" or "envelope".
	Name() string

	// Accept returns nil when the result passes.
	Accept(c LessonContent, o Outcome) *GateError
}

// GateError describes why a result was rejected.
type GateError struct {
	Gate    string
	Message string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("gate %q: %s", e.Gate, e.Message)
}

// Gate names accepted by ParseGate.
const (
	GateComplete = "complete"
	GateEnvelope = "envelope"
)

// ParseGate returns the gate for name. Empty means GateComplete.
func ParseGate(name string) (Gate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", GateComplete:
		return CompletenessGate{}, nil
	case GateEnvelope:
		return EnvelopeGate{}, nil
	}
	return nil, fmt.Errorf("unknown gate %q (want %s or %s)", name, GateComplete, GateEnvelope)
}

// CompletenessGate accepts results that satisfy IsComplete.
type CompletenessGate struct{}

func (CompletenessGate) Name() string { return GateComplete }

func (g CompletenessGate) Accept(c LessonContent, o Outcome) *GateError {
	if o.Kind == OutcomeUnparseable {
		return &GateError{Gate: g.Name(), Message: "response could not be parsed"}
	}
	if n := ArticleLength(c); n <= MinArticleRunes {
		return &GateError{Gate: g.Name(), Message: fmt.Sprintf("article too short (%d runes)", n)}
	}
	if n := len(c.Vocabulary); n < MinVocabulary {
		return &GateError{Gate: g.Name(), Message: fmt.Sprintf("only %d vocabulary items", n)}
	}
	if n := len(c.Quiz); n < MinQuiz {
		return &GateError{Gate: g.Name(), Message: fmt.Sprintf("only %d quiz items", n)}
	}
	return nil
}

// EnvelopeGate accepts any result that carries all three sections, even
// when they are short or empty.
type EnvelopeGate struct{}

func (EnvelopeGate) Name() string { return GateEnvelope }

func (g EnvelopeGate) Accept(_ LessonContent, o Outcome) *GateError {
	switch o.Kind {
	case OutcomeOK:
		return nil
	case OutcomePartial:
		return &GateError{Gate: g.Name(), Message: "missing " + strings.Join(o.Missing, ", ")}
	default:
		return &GateError{Gate: g.Name(), Message: "response could not be parsed"}
	}
}
