package lesson

import (
	"regexp"
	"strings"
)

var (
	// sectionLabel matches an all-caps "LABEL:" header at the start of a
	// line, tolerating markdown heading and bold markers.
	sectionLabel    = regexp.MustCompile(`(?m)^[ \t#*]*([A-Z][A-Z_]*[A-Z])\**[ \t]*[:：]\**[ \t]*`)
	optionSplit     = regexp.MustCompile(`[,，]`)
	optionSlotLabel = regexp.MustCompile(`^\s*([A-D])[.):：]\s+`)
)

var knownLabels = []string{LabelTitleEn, LabelTitleZh, LabelArticleEn, LabelArticleZh, LabelVocab, LabelQuestions}

// splitSections maps each label to the text up to the next label. When a
// label repeats, the first occurrence wins.
func splitSections(raw string) map[string]string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	locs := sectionLabel.FindAllStringSubmatchIndex(raw, -1)

	out := make(map[string]string, len(locs))
	for i, loc := range locs {
		name := raw[loc[2]:loc[3]]
		if _, seen := out[name]; seen {
			continue
		}
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out[name] = strings.TrimSpace(raw[loc[1]:end])
	}
	return out
}

func parseSections(raw string) (LessonContent, Outcome) {
	sec := splitSections(raw)

	found := false
	for _, l := range knownLabels {
		if _, ok := sec[l]; ok {
			found = true
			break
		}
	}
	if !found {
		return LessonContent{}, Outcome{Kind: OutcomeUnparseable}
	}

	c := LessonContent{
		Article: Article{
			TitleEn:      firstLine(sec[LabelTitleEn]),
			TitleZh:      firstLine(sec[LabelTitleZh]),
			ParagraphsEn: ToParagraphs(sec[LabelArticleEn]),
			ParagraphsZh: ToParagraphs(sec[LabelArticleZh]),
		},
		Vocabulary: parseVocabLines(sec[LabelVocab]),
		Quiz:       parseQuestionLines(sec[LabelQuestions]),
	}

	var missing []string
	if len(c.Article.ParagraphsEn) == 0 {
		missing = append(missing, SectionArticle)
	}
	if len(c.Vocabulary) == 0 {
		missing = append(missing, SectionVocabulary)
	}
	if len(c.Quiz) == 0 {
		missing = append(missing, SectionQuiz)
	}
	return c, outcomeFor(missing, "sections")
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// contentLines returns the non-empty lines of s with list ordinals removed.
func contentLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(stripOrdinal(line))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitFields(line string) []string {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseVocabLines reads "word | pos | meaningZh | exampleEn | exampleZh"
// lines. Short lines are padded; lines without a word are dropped.
func parseVocabLines(s string) []VocabEntry {
	out := []VocabEntry{}
	for _, line := range contentLines(s) {
		f := splitFields(line)
		for len(f) < 5 {
			f = append(f, "")
		}
		if f[0] == "" {
			continue
		}
		out = append(out, VocabEntry{
			Word:         f[0],
			PartOfSpeech: f[1],
			MeaningZh:    f[2],
			ExampleEn:    f[3],
			ExampleZh:    f[4],
		})
	}
	return out
}

// parseQuestionLines reads "qEn | qZh | options | answer [| explanationZh]"
// lines, or the older three-field "qEn | options | answer".
func parseQuestionLines(s string) []QuizItem {
	out := []QuizItem{}
	for _, line := range contentLines(s) {
		f := splitFields(line)
		var q QuizItem
		var opts, ans string
		switch {
		case len(f) >= 4:
			q.QuestionEn, q.QuestionZh, opts, ans = f[0], f[1], f[2], f[3]
			if len(f) >= 5 {
				q.ExplanationZh = f[4]
			}
		case len(f) == 3:
			q.QuestionEn, opts, ans = f[0], f[1], f[2]
		default:
			continue
		}
		if q.QuestionEn == "" {
			continue
		}
		q.OptionsEn = optionSlots(opts)
		q.OptionsZh = []string{}
		q.Answer = answerLetter(ans)
		out = append(out, q)
	}
	return out
}

// optionSlots splits a comma list into the four A-D slots. Labelled
// entries go to their own slot; the rest fill free slots in order.
func optionSlots(s string) []string {
	slots := make([]string, 4)
	var filled [4]bool
	var loose []string

	for _, p := range optionSplit.Split(s, 4) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if m := optionSlotLabel.FindStringSubmatch(p); m != nil {
			if i := LetterIndex(m[1]); !filled[i] {
				slots[i] = StripOptionLabel(p)
				filled[i] = true
				continue
			}
		}
		loose = append(loose, StripOptionLabel(p))
	}

	for _, p := range loose {
		for i := range slots {
			if !filled[i] {
				slots[i] = p
				filled[i] = true
				break
			}
		}
	}
	return slots
}
