// Package render formats lessons and the theme catalog for the terminal.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shirley/readingcoach/internal/lesson"
	"github.com/shirley/readingcoach/internal/ui/theme"
)

// Options controls what a rendered lesson shows.
type Options struct {
	Width       int  // wrap width; 0 means 80
	ShowChinese bool // include translations
	ShowAnswers bool // mark the correct option and show explanations
}

// Lesson renders a full lesson: header, article, vocabulary and quiz.
func Lesson(c lesson.LessonContent, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	body := theme.Body.Width(width)
	zh := theme.Translation.Width(width)

	var b strings.Builder

	b.WriteString(theme.Title.Render(c.Article.TitleEn) + "\n")
	if opts.ShowChinese && c.Article.TitleZh != "" {
		b.WriteString(theme.Subtitle.Render(c.Article.TitleZh) + "\n")
	}
	b.WriteString(metaLine(c.Meta) + "\n")

	b.WriteString(theme.Heading.Render("Article 文章") + "\n")
	for i, p := range c.Article.ParagraphsEn {
		b.WriteString(body.Render(p) + "\n")
		if opts.ShowChinese && i < len(c.Article.ParagraphsZh) {
			b.WriteString(zh.Render(c.Article.ParagraphsZh[i]) + "\n")
		}
		b.WriteString("\n")
	}

	if len(c.Vocabulary) > 0 {
		b.WriteString(theme.Heading.Render("Vocabulary 單字") + "\n")
		for _, v := range c.Vocabulary {
			line := theme.Word.Render(v.Word)
			if v.PartOfSpeech != "" {
				line += " " + theme.Hint.Render(v.PartOfSpeech)
			}
			if v.MeaningZh != "" {
				line += "  " + v.MeaningZh
			}
			b.WriteString(line + "\n")
			if v.ExampleEn != "" {
				b.WriteString(zh.Render(v.ExampleEn) + "\n")
			}
			if opts.ShowChinese && v.ExampleZh != "" {
				b.WriteString(zh.Render(v.ExampleZh) + "\n")
			}
		}
	}

	if len(c.Quiz) > 0 {
		b.WriteString(theme.Heading.Render("Quiz 測驗") + "\n")
		for i, q := range c.Quiz {
			b.WriteString(quizItem(i+1, q, opts, width))
		}
	}

	return b.String()
}

func quizItem(n int, q lesson.QuizItem, opts Options, width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Width(width).Render(fmt.Sprintf("%d. %s", n, q.QuestionEn)) + "\n")
	if opts.ShowChinese && q.QuestionZh != "" {
		b.WriteString(theme.Translation.Render(q.QuestionZh) + "\n")
	}
	for i, opt := range q.OptionsEn {
		letter := lesson.IndexLetter(i)
		line := fmt.Sprintf("   %s. %s", letter, opt)
		if opts.ShowChinese && i < len(q.OptionsZh) && q.OptionsZh[i] != "" {
			line += "  " + theme.Hint.Render(q.OptionsZh[i])
		}
		if opts.ShowAnswers && letter == q.Answer {
			line = theme.Correct.Render(line + "  ✓")
		}
		b.WriteString(line + "\n")
	}
	if opts.ShowAnswers && q.ExplanationZh != "" {
		b.WriteString(theme.Hint.Render("   "+q.ExplanationZh) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func metaLine(m lesson.Meta) string {
	parts := []string{string(m.Level), m.Provider}
	if m.Model != "" {
		parts = append(parts, m.Model)
	}
	line := theme.Hint.Render(strings.Join(parts, " · "))
	if m.Reason != "" {
		line += "  " + theme.Warning.Render("("+m.Reason+")")
	}
	return line
}

// Themes renders the catalog as an aligned list with colored ornaments.
func Themes(themes []lesson.Theme) string {
	idWidth := 0
	enWidth := 0
	for _, t := range themes {
		idWidth = max(idWidth, lipgloss.Width(t.ID))
		enWidth = max(enWidth, lipgloss.Width(t.LabelEn))
	}

	var b strings.Builder
	for _, t := range themes {
		dot := lipgloss.NewStyle().Foreground(theme.Ornament(t.Style)).Render("●")
		id := lipgloss.NewStyle().Width(idWidth).Render(t.ID)
		en := lipgloss.NewStyle().Width(enWidth).Render(t.LabelEn)
		fmt.Fprintf(&b, "%s %s  %s  %s\n", dot, theme.Word.Render(id), en, t.LabelZh)
	}
	return b.String()
}
