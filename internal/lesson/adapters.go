package lesson

import "strings"

// Section names reported in Outcome.Missing.
const (
	SectionArticle    = "article"
	SectionVocabulary = "vocabulary"
	SectionQuiz       = "quiz"
)

// DocumentAdapter converts one known top-level response shape into
// LessonContent. Adapt reports the sections the document did not carry.
type DocumentAdapter struct {
	Name  string
	Match func(doc map[string]any) bool
	Adapt func(doc map[string]any) (LessonContent, []string)
}

// QuizItemAdapter converts one known quiz item shape into a QuizItem.
// Option labels and the answer letter are normalized afterwards.
type QuizItemAdapter struct {
	Name  string
	Match func(item map[string]any) bool
	Adapt func(item map[string]any) QuizItem
}

// DocumentAdapters are tried in order; the first match wins. Flat documents
// may carry an "article" object too, so flat is checked before canonical.
// The canonical adapter also handles documents no adapter recognizes.
var DocumentAdapters = []DocumentAdapter{
	{Name: "wrapped", Match: matchWrapped, Adapt: adaptWrapped},
	{Name: "flat", Match: matchFlat, Adapt: adaptFlat},
	{Name: "canonical", Match: matchCanonical, Adapt: adaptCanonical},
}

// QuizItemAdapters are tried in order; the first match wins.
var QuizItemAdapters = []QuizItemAdapter{
	{Name: "canonical", Match: matchCanonicalQuiz, Adapt: adaptCanonicalQuiz},
	{Name: "legacy", Match: matchLegacyQuiz, Adapt: adaptLegacyQuiz},
	{Name: "short", Match: matchShortQuiz, Adapt: adaptShortQuiz},
}

// adaptDocument picks the adapter for doc.
func adaptDocument(doc map[string]any) (LessonContent, []string, string) {
	for _, a := range DocumentAdapters {
		if a.Match(doc) {
			c, missing := a.Adapt(doc)
			return c, missing, a.Name
		}
	}
	c, missing := adaptCanonical(doc)
	return c, missing, "canonical"
}

func hasAny(m map[string]any, keys ...string) bool {
	_, ok := firstValue(m, keys...)
	return ok
}

// wrapped: {"provider": "...", "data": {...canonical...}}

func matchWrapped(doc map[string]any) bool {
	data, ok := doc["data"].(map[string]any)
	return ok && hasAny(data, "article", "vocabulary", "quiz")
}

func adaptWrapped(doc map[string]any) (LessonContent, []string) {
	return adaptCanonical(doc["data"].(map[string]any))
}

// canonical: {"article": {...}, "vocabulary": [...], "quiz": [...]}

func matchCanonical(doc map[string]any) bool {
	return hasAny(doc, "article", "vocabulary", "quiz")
}

func adaptCanonical(doc map[string]any) (LessonContent, []string) {
	var c LessonContent
	var missing []string

	switch a := doc["article"].(type) {
	case map[string]any:
		c.Article = adaptArticle(a)
	case string, []any:
		c.Article.ParagraphsEn = ToParagraphs(a)
	default:
		missing = append(missing, SectionArticle)
	}

	if v, ok := doc["vocabulary"]; ok && v != nil {
		c.Vocabulary = adaptVocabulary(v)
	} else {
		missing = append(missing, SectionVocabulary)
	}

	if v, ok := doc["quiz"]; ok && v != nil {
		c.Quiz = adaptQuiz(v)
	} else {
		missing = append(missing, SectionQuiz)
	}
	return c, missing
}

func adaptArticle(a map[string]any) Article {
	en, _ := firstValue(a, "paragraphsEn", "paragraphs", "en", "contentEn")
	zh, _ := firstValue(a, "paragraphsZh", "zh", "contentZh")
	return Article{
		TitleEn:      firstString(a, "titleEn", "title"),
		TitleZh:      firstString(a, "titleZh"),
		ParagraphsEn: ToParagraphs(en),
		ParagraphsZh: ToParagraphs(zh),
	}
}

// flat: {"titleEn", "titleZh", "articleEn", "articleZh", "vocab", "questions"}

func matchFlat(doc map[string]any) bool {
	return hasAny(doc, "titleEn", "articleEn", "paragraphsEn", "vocab", "questions")
}

func adaptFlat(doc map[string]any) (LessonContent, []string) {
	var c LessonContent
	var missing []string

	nested, _ := doc["article"].(map[string]any)
	en, hasEn := firstValue(doc, "articleEn", "paragraphsEn")
	if !hasEn && nested != nil {
		en, hasEn = firstValue(nested, "en")
	}
	zh, _ := firstValue(doc, "articleZh", "paragraphsZh")
	if zh == nil && nested != nil {
		zh, _ = firstValue(nested, "zh")
	}
	c.Article = Article{
		TitleEn:      firstString(doc, "titleEn", "title"),
		TitleZh:      firstString(doc, "titleZh"),
		ParagraphsEn: ToParagraphs(en),
		ParagraphsZh: ToParagraphs(zh),
	}
	if !hasEn && c.Article.TitleEn == "" {
		missing = append(missing, SectionArticle)
	}

	if v, ok := firstValue(doc, "vocab", "vocabulary"); ok {
		c.Vocabulary = adaptVocabulary(v)
	} else {
		missing = append(missing, SectionVocabulary)
	}

	if v, ok := firstValue(doc, "questions", "quiz"); ok {
		c.Quiz = adaptQuiz(v)
	} else {
		missing = append(missing, SectionQuiz)
	}
	return c, missing
}

func adaptVocabulary(v any) []VocabEntry {
	items, _ := v.([]any)
	out := make([]VocabEntry, 0, len(items))
	for _, item := range items {
		var e VocabEntry
		switch x := item.(type) {
		case map[string]any:
			e = VocabEntry{
				Word:         firstString(x, "word", "term"),
				PartOfSpeech: firstString(x, "pos", "partOfSpeech"),
				MeaningZh:    firstString(x, "meaningZh", "meaning", "definitionZh"),
				ExampleEn:    firstString(x, "exampleEn", "example"),
				ExampleZh:    firstString(x, "exampleZh"),
			}
		case string:
			e.Word = strings.TrimSpace(x)
		}
		if e.Word == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func adaptQuiz(v any) []QuizItem {
	items, _ := v.([]any)
	out := make([]QuizItem, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		q, ok := adaptQuizItem(m)
		if !ok {
			continue
		}
		out = append(out, q)
	}
	return out
}

// adaptQuizItem runs the first matching quiz item adapter and normalizes
// its options and answer. Items no adapter recognizes are dropped.
func adaptQuizItem(m map[string]any) (QuizItem, bool) {
	for _, a := range QuizItemAdapters {
		if !a.Match(m) {
			continue
		}
		q := a.Adapt(m)
		q.OptionsEn = StripOptionLabels(q.OptionsEn)
		q.OptionsZh = StripOptionLabels(q.OptionsZh)
		return q, true
	}
	return QuizItem{}, false
}

func matchCanonicalQuiz(m map[string]any) bool {
	return hasAny(m, "questionEn", "optionsEn")
}

func adaptCanonicalQuiz(m map[string]any) QuizItem {
	en, ok := firstValue(m, "optionsEn")
	if !ok {
		en = m["options"]
	}
	return QuizItem{
		QuestionEn:    firstString(m, "questionEn", "question"),
		QuestionZh:    firstString(m, "questionZh"),
		OptionsEn:     stringList(en),
		OptionsZh:     stringList(m["optionsZh"]),
		Answer:        answerLetter(m["answer"]),
		ExplanationZh: firstString(m, "explanationZh", "explanation"),
	}
}

func matchLegacyQuiz(m map[string]any) bool {
	return hasAny(m, "question", "options")
}

func adaptLegacyQuiz(m map[string]any) QuizItem {
	return QuizItem{
		QuestionEn:    firstString(m, "question"),
		QuestionZh:    firstString(m, "questionZh"),
		OptionsEn:     stringList(m["options"]),
		OptionsZh:     stringList(m["optionsZh"]),
		Answer:        answerLetter(m["answer"]),
		ExplanationZh: firstString(m, "explanationZh", "explanation"),
	}
}

func matchShortQuiz(m map[string]any) bool {
	return hasAny(m, "q", "choices")
}

func adaptShortQuiz(m map[string]any) QuizItem {
	ans, _ := firstValue(m, "a", "answer")
	return QuizItem{
		QuestionEn: firstString(m, "q"),
		OptionsEn:  stringList(m["choices"]),
		Answer:     answerLetter(ans),
	}
}
