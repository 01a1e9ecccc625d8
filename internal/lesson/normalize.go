package lesson

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutcomeKind classifies how much of a lesson a raw response yielded.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomePartial
	OutcomeUnparseable
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomePartial:
		return "partial"
	case OutcomeUnparseable:
		return "unparseable"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the normalizer's verdict on a raw response.
type Outcome struct {
	Kind    OutcomeKind
	Missing []string // sections absent from a Partial result
	Adapter string   // document adapter or "sections"
}

func (o Outcome) String() string {
	if o.Kind == OutcomePartial {
		return fmt.Sprintf("partial (missing %s)", strings.Join(o.Missing, ", "))
	}
	return o.Kind.String()
}

func outcomeFor(missing []string, adapter string) Outcome {
	if len(missing) == 0 {
		return Outcome{Kind: OutcomeOK, Adapter: adapter}
	}
	return Outcome{Kind: OutcomePartial, Missing: missing, Adapter: adapter}
}

// Parse normalizes raw model output into LessonContent. It never fails:
// whatever could not be read comes back empty and is described by the
// Outcome. Titles default to the topic labels and Meta.Level to the topic
// level; the caller fills in the rest of Meta.
func Parse(raw string, mode Mode, topic Topic) (LessonContent, Outcome) {
	var (
		c LessonContent
		o Outcome
	)
	if mode == ModeSections {
		c, o = parseSections(raw)
	} else {
		c, o = parseJSON(raw)
	}

	if c.Article.TitleEn == "" {
		c.Article.TitleEn = topic.En
	}
	if c.Article.TitleZh == "" {
		c.Article.TitleZh = topic.Zh
	}
	c.Meta.Level = topic.Level
	c.ensureArrays()
	return c, o
}

func parseJSON(raw string) (LessonContent, Outcome) {
	doc, ok := decodeObject(raw)
	if !ok {
		return LessonContent{}, Outcome{Kind: OutcomeUnparseable}
	}
	c, missing, adapter := adaptDocument(doc)
	return c, outcomeFor(missing, adapter)
}

// decodeObject parses raw as a JSON object, falling back to the substring
// between the first '{' and the last '}' (code fences, chatter).
func decodeObject(raw string) (map[string]any, bool) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil && doc != nil {
		return doc, true
	}

	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	doc = nil
	if err := json.Unmarshal([]byte(raw[start:end+1]), &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}
