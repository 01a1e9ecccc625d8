package lesson

import (
	"fmt"
	"strings"
)

// Mode selects the response layout the model is asked for and the
// normalizer path that reads it.
type Mode string

const (
	ModeJSON     Mode = "json"
	ModeSections Mode = "sections"
)

// ParseMode parses a mode name. Empty means JSON.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return ModeJSON, nil
	case "sections", "section", "text":
		return ModeSections, nil
	}
	return "", fmt.Errorf("unknown parse mode %q (want json or sections)", s)
}

// Section labels used by the plain-text layout.
const (
	LabelTitleEn   = "TITLE_EN"
	LabelTitleZh   = "TITLE_ZH"
	LabelArticleEn = "ARTICLE_EN"
	LabelArticleZh = "ARTICLE_ZH"
	LabelVocab     = "VOCABULARY"
	LabelQuestions = "QUESTIONS"
)

// Item counts the prompt asks for.
const (
	VocabularyCount = 5
	QuizCount       = 5
)

const jsonSystemPrompt = "Return ONLY JSON."

const sectionsSystemPrompt = `Return ONLY the labelled sections described by the user. No markdown, no commentary.`

// SystemPrompt returns the companion system prompt for mode.
func SystemPrompt(mode Mode) string {
	if mode == ModeSections {
		return sectionsSystemPrompt
	}
	return jsonSystemPrompt
}

// LevelSpec describes the length and register of the article for a level.
func LevelSpec(level Level) string {
	switch level {
	case LevelMedium:
		return "250-300 words, intermediate high-school English"
	case LevelHard:
		return "350-400 words, advanced academic English"
	default:
		return "150-200 words, simple middle-school English"
	}
}

// BuildPrompt constructs the generation instruction for topic.
func BuildPrompt(topic Topic, mode Mode) string {
	var b strings.Builder

	b.WriteString("You are a bilingual reading material generator.\n")
	b.WriteString("Audience: Taiwanese students learning English as a foreign language. ")
	b.WriteString("Tone: warm, clear and encouraging.\n\n")

	fmt.Fprintf(&b, "Topic (EN): %s\n", topic.En)
	fmt.Fprintf(&b, "Topic (ZH-TW): %s\n", topic.Zh)
	fmt.Fprintf(&b, "Level: %s (%s)\n\n", topic.Level, LevelSpec(topic.Level))

	if mode == ModeSections {
		writeSectionsLayout(&b)
	} else {
		writeJSONLayout(&b)
	}

	b.WriteString("\nImportant rules:\n")
	b.WriteString("- The English article must match the level's word count and register.\n")
	b.WriteString("- Split the article into paragraphs; the Chinese translation follows the same paragraphs.\n")
	fmt.Fprintf(&b, "- Provide exactly %d vocabulary items taken from the article.\n", VocabularyCount)
	fmt.Fprintf(&b, "- Provide exactly %d multiple-choice questions, each with exactly 4 options.\n", QuizCount)
	b.WriteString("- The answer is a single letter: A, B, C or D.\n")
	b.WriteString("- All Chinese text MUST be Traditional Chinese (繁體中文, Taiwan usage). Never use Simplified Chinese.\n")
	return b.String()
}

func writeJSONLayout(b *strings.Builder) {
	b.WriteString("Return JSON with this exact structure:\n")
	b.WriteString(`{
  "article": {
    "titleEn": "English title",
    "titleZh": "繁體中文標題",
    "paragraphsEn": ["paragraph 1", "paragraph 2"],
    "paragraphsZh": ["第一段", "第二段"]
  },
  "vocabulary": [
    {"word": "word", "pos": "n.", "meaningZh": "中文解釋", "exampleEn": "Example sentence.", "exampleZh": "例句翻譯。"}
  ],
  "quiz": [
    {
      "questionEn": "Question?",
      "questionZh": "問題？",
      "optionsEn": ["option", "option", "option", "option"],
      "optionsZh": ["選項", "選項", "選項", "選項"],
      "answer": "A",
      "explanationZh": "解析"
    }
  ]
}
`)
	b.WriteString("Do not prefix options with letters like \"A.\".\n")
}

func writeSectionsLayout(b *strings.Builder) {
	b.WriteString("Return plain text with exactly these labelled sections, in this order:\n\n")
	fmt.Fprintf(b, "%s: English title\n", LabelTitleEn)
	fmt.Fprintf(b, "%s: 繁體中文標題\n", LabelTitleZh)
	fmt.Fprintf(b, "%s:\nEnglish paragraphs separated by a blank line\n", LabelArticleEn)
	fmt.Fprintf(b, "%s:\n繁體中文翻譯，段落以空行分隔\n", LabelArticleZh)
	fmt.Fprintf(b, "%s:\n", LabelVocab)
	b.WriteString("1. word | part of speech | 中文解釋 | English example | 例句翻譯\n")
	fmt.Fprintf(b, "%s:\n", LabelQuestions)
	b.WriteString("1. English question | 繁體中文題目 | A. option, B. option, C. option, D. option | A\n\n")
	b.WriteString("One vocabulary item or question per line. Options must not contain commas.\n")
}
