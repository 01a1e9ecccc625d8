package lesson

import (
	"fmt"
	"strings"
)

// BuildVersion tags every generated lesson so clients can tell which
// server build produced it.
const BuildVersion = "readingcoach-2025-12-08-v7"

// Level is the article difficulty.
type Level string

const (
	LevelEasy   Level = "Easy"
	LevelMedium Level = "Medium"
	LevelHard   Level = "Hard"
)

// ParseLevel matches s case-insensitively. Unknown or empty values fall
// back to Easy.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return LevelMedium
	case "hard":
		return LevelHard
	default:
		return LevelEasy
	}
}

// Provider names reported in Meta.Provider besides the LLM providers.
const ProviderMock = "mock"

// Reasons recorded in Meta.Reason when content is mock or degraded.
const (
	ReasonNoKey     = "no_key"
	ReasonBadOutput = "bad_output"
	ReasonException = "exception"
)

// APIErrorReason formats the reason for a provider HTTP failure.
func APIErrorReason(status int) string {
	return fmt.Sprintf("api_error_%d", status)
}

// LessonContent is one generated reading lesson.
type LessonContent struct {
	Article    Article      `json:"article"`
	Vocabulary []VocabEntry `json:"vocabulary"`
	Quiz       []QuizItem   `json:"quiz"`
	Meta       Meta         `json:"meta"`
}

// Article holds the bilingual reading passage.
type Article struct {
	TitleEn      string   `json:"titleEn"`
	TitleZh      string   `json:"titleZh"`
	ParagraphsEn []string `json:"paragraphsEn"`
	ParagraphsZh []string `json:"paragraphsZh"`
}

// VocabEntry is one vocabulary item. Word is never empty.
type VocabEntry struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"pos"`
	MeaningZh    string `json:"meaningZh"`
	ExampleEn    string `json:"exampleEn"`
	ExampleZh    string `json:"exampleZh"`
}

// QuizItem is a multiple-choice question. Answer is always one of A-D.
type QuizItem struct {
	QuestionEn    string   `json:"questionEn"`
	QuestionZh    string   `json:"questionZh"`
	OptionsEn     []string `json:"optionsEn"`
	OptionsZh     []string `json:"optionsZh"`
	Answer        string   `json:"answer"`
	ExplanationZh string   `json:"explanationZh"`
}

// Meta records where the content came from.
type Meta struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Level    Level  `json:"level"`
	Version  string `json:"version"`
}

// Degraded reports whether the content is mock or a partial provider result.
func (m Meta) Degraded() bool {
	return m.Provider == ProviderMock || m.Reason != ""
}

// ensureArrays replaces nil slices with empty ones so the JSON encoding
// always carries arrays.
func (c *LessonContent) ensureArrays() {
	c.Article.ParagraphsEn = nonNil(c.Article.ParagraphsEn)
	c.Article.ParagraphsZh = nonNil(c.Article.ParagraphsZh)
	if c.Vocabulary == nil {
		c.Vocabulary = []VocabEntry{}
	}
	if c.Quiz == nil {
		c.Quiz = []QuizItem{}
	}
	for i := range c.Quiz {
		c.Quiz[i].OptionsEn = nonNil(c.Quiz[i].OptionsEn)
		c.Quiz[i].OptionsZh = nonNil(c.Quiz[i].OptionsZh)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// GenerateRequest is the body of a lesson generation request.
type GenerateRequest struct {
	ThemeID string `json:"themeId"`
	Level   string `json:"level"`
	ThemeEn string `json:"themeEn,omitempty"`
	ThemeZh string `json:"themeZh,omitempty"`
}

// Topic is a fully resolved generation target.
type Topic struct {
	ThemeID string
	En      string
	Zh      string
	Level   Level
}

// Default topic labels when neither the catalog nor the request name one.
const (
	DefaultTopicEn = "Topic"
	DefaultTopicZh = "主題"
)

// Topic resolves the request against the theme catalog. Explicit labels
// in the request win over catalog labels.
func (r GenerateRequest) Topic() Topic {
	t := Topic{
		ThemeID: strings.TrimSpace(r.ThemeID),
		En:      strings.TrimSpace(r.ThemeEn),
		Zh:      strings.TrimSpace(r.ThemeZh),
		Level:   ParseLevel(r.Level),
	}
	if theme, ok := LookupTheme(t.ThemeID); ok {
		if t.En == "" {
			t.En = theme.LabelEn
		}
		if t.Zh == "" {
			t.Zh = theme.LabelZh
		}
	}
	if t.En == "" {
		t.En = DefaultTopicEn
	}
	if t.Zh == "" {
		t.Zh = DefaultTopicZh
	}
	return t
}
