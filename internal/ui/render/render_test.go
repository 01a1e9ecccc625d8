package render

import (
	"strings"
	"testing"

	"github.com/shirley/readingcoach/internal/lesson"
)

func sampleLesson() lesson.LessonContent {
	return lesson.MockContent(lesson.GenerateRequest{ThemeID: "energy", Level: "hard"}.Topic(), lesson.ReasonNoKey, "test")
}

func TestLesson_English(t *testing.T) {
	out := Lesson(sampleLesson(), Options{})

	for _, want := range []string{"Energy", "mock article", "Vocabulary", "practice", "What should you do after reading?", "no_key", "Hard"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "這是一篇關於") {
		t.Error("Chinese translation shown without ShowChinese")
	}
	if strings.Contains(out, "✓") {
		t.Error("answers marked without ShowAnswers")
	}
}

func TestLesson_ChineseAndAnswers(t *testing.T) {
	out := Lesson(sampleLesson(), Options{ShowChinese: true, ShowAnswers: true, Width: 100})

	for _, want := range []string{"能源", "這是一篇關於「能源」的模擬文章。", "✓", "所有中文內容都使用繁體中文。"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLesson_EmptySections(t *testing.T) {
	c, _ := lesson.Parse("nothing", lesson.ModeJSON, lesson.Topic{En: "Topic", Zh: "主題", Level: lesson.LevelEasy})
	out := Lesson(c, Options{})
	if strings.Contains(out, "Quiz") || strings.Contains(out, "Vocabulary") {
		t.Errorf("empty sections rendered:\n%s", out)
	}
}

func TestThemes(t *testing.T) {
	out := Themes(lesson.Themes())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 19 {
		t.Fatalf("got %d lines, want 19", len(lines))
	}
	if !strings.Contains(lines[0], "gender") || !strings.Contains(lines[0], "性別平等") {
		t.Errorf("first line = %q", lines[0])
	}
}
