package lesson

import (
	"encoding/json"
	"fmt"
	"testing"
)

var testTopic = Topic{ThemeID: "ocean", En: "Global Ocean", Zh: "海洋", Level: LevelMedium}

// canonicalDoc returns a complete lesson document in the canonical shape.
func canonicalDoc() map[string]any {
	vocab := make([]any, 0, 5)
	for _, w := range []string{"ocean", "coral", "tide", "current", "marine"} {
		vocab = append(vocab, map[string]any{
			"word": w, "pos": "n.", "meaningZh": "意思",
			"exampleEn": "Example with " + w + ".", "exampleZh": "例句。",
		})
	}
	quiz := make([]any, 0, 5)
	for i := range 5 {
		quiz = append(quiz, map[string]any{
			"questionEn":    fmt.Sprintf("Question %d?", i+1),
			"questionZh":    fmt.Sprintf("問題 %d？", i+1),
			"optionsEn":     []any{"A. first", "B. second", "C. third", "D. fourth"},
			"optionsZh":     []any{"一", "二", "三", "四"},
			"answer":        "B",
			"explanationZh": "解析",
		})
	}
	return map[string]any{
		"article": map[string]any{
			"titleEn": "The Living Sea",
			"titleZh": "活著的海洋",
			"paragraphsEn": []any{
				"The ocean covers more than seventy percent of our planet and shapes the weather everywhere.",
				"Coral reefs are home to a quarter of all marine species, yet they are very fragile.",
			},
			"paragraphsZh": []any{"海洋覆蓋地球超過百分之七十。", "珊瑚礁是四分之一海洋物種的家。"},
		},
		"vocabulary": vocab,
		"quiz":       quiz,
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

const sectionsResponse = `TITLE_EN: The Living Sea
TITLE_ZH: 活著的海洋
ARTICLE_EN:
The ocean covers more than seventy percent of our planet and shapes the weather everywhere.

Coral reefs are home to a quarter of all marine species, yet they are very fragile.
ARTICLE_ZH:
海洋覆蓋地球超過百分之七十。

珊瑚礁是四分之一海洋物種的家。
VOCABULARY:
1. ocean | n. | 海洋 | The ocean is deep. | 海洋很深。
2. coral | n. | 珊瑚 | Coral is alive. | 珊瑚是活的。
3. tide | n. | 潮汐 | The tide is high. | 漲潮了。
4. current | n. | 洋流 | The current is strong. | 洋流很強。
5. fragile | adj. | 脆弱的 | Reefs are fragile. | 珊瑚礁很脆弱。
QUESTIONS:
1. How much of the planet does the ocean cover? | 海洋覆蓋地球多少？ | A. Ten percent, B. Over seventy percent, C. Half, D. All of it | B
2. What lives on coral reefs? | 珊瑚礁上住著什麼？ | A. Marine species, B. Birds, C. Cars, D. Trees | A
3. Are reefs strong? | 珊瑚礁堅固嗎？ | A. Yes, B. No, C. Sometimes, D. Unknown | B
4. What shapes the weather? | 什麼影響天氣？ | A. Mountains, B. Cities, C. The ocean, D. Roads | C
5. What is the article about? | 文章在談什麼？ | A. Space, B. Sports, C. Food, D. The ocean | D
`
