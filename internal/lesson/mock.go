package lesson

import (
	"fmt"
	"strings"
)

// MockContent builds the deterministic stand-in lesson served when no
// provider produced usable output. It is schema-complete and never
// shuffled.
func MockContent(topic Topic, reason, version string) LessonContent {
	c := LessonContent{
		Article: Article{
			TitleEn: topic.En,
			TitleZh: topic.Zh,
			ParagraphsEn: []string{
				fmt.Sprintf("This is a mock article about %s.", topic.En),
				"Because no API key is available or the AI response failed.",
			},
			ParagraphsZh: []string{
				fmt.Sprintf("這是一篇關於「%s」的模擬文章。", topic.Zh),
				"因為目前沒有可用的 AI Key 或生成失敗。",
			},
		},
		Vocabulary: mockVocabulary(topic),
		Quiz:       mockQuiz(topic),
		Meta: Meta{
			Provider: ProviderMock,
			Reason:   reason,
			Level:    topic.Level,
			Version:  version,
		},
	}
	c.ensureArrays()
	return c
}

func mockVocabulary(topic Topic) []VocabEntry {
	return []VocabEntry{
		{
			Word:         strings.ToLower(topic.En),
			PartOfSpeech: "n.",
			MeaningZh:    topic.Zh,
			ExampleEn:    fmt.Sprintf("Today we are reading about %s.", strings.ToLower(topic.En)),
			ExampleZh:    fmt.Sprintf("今天我們閱讀關於「%s」的文章。", topic.Zh),
		},
		{Word: "example", PartOfSpeech: "n.", MeaningZh: "例子", ExampleEn: "This is an example sentence.", ExampleZh: "這是一個例句。"},
		{Word: "article", PartOfSpeech: "n.", MeaningZh: "文章", ExampleEn: "Please read the article carefully.", ExampleZh: "請仔細閱讀這篇文章。"},
		{Word: "practice", PartOfSpeech: "v.", MeaningZh: "練習", ExampleEn: "Students practice reading every day.", ExampleZh: "學生每天練習閱讀。"},
		{Word: "understand", PartOfSpeech: "v.", MeaningZh: "理解", ExampleEn: "Read slowly to understand the main idea.", ExampleZh: "慢慢讀以理解主旨。"},
	}
}

func mockQuiz(topic Topic) []QuizItem {
	return []QuizItem{
		{
			QuestionEn:    "What is this article about?",
			QuestionZh:    "這篇文章主要在談什麼？",
			OptionsEn:     []string{topic.En, "Cooking dinner", "Playing football", "Planning a trip"},
			OptionsZh:     []string{topic.Zh, "煮晚餐", "踢足球", "規劃旅行"},
			Answer:        "A",
			ExplanationZh: fmt.Sprintf("文章的主題是「%s」。", topic.Zh),
		},
		{
			QuestionEn:    "Why are you reading a mock article?",
			QuestionZh:    "為什麼你看到的是模擬文章？",
			OptionsEn:     []string{"The teacher chose it.", "The AI service was unavailable.", "Today is a holiday.", "The page was printed."},
			OptionsZh:     []string{"老師選了它。", "AI 服務暫時無法使用。", "今天是假日。", "頁面已經列印。"},
			Answer:        "B",
			ExplanationZh: "文章第二段說明 AI 生成失敗或沒有可用的 Key。",
		},
		{
			QuestionEn:    "What does the word \"example\" mean?",
			QuestionZh:    "單字 \"example\" 是什麼意思？",
			OptionsEn:     []string{"A kind of food", "A place to live", "A sample that shows something", "A loud noise"},
			OptionsZh:     []string{"一種食物", "居住的地方", "用來說明的例子", "很大的聲音"},
			Answer:        "C",
			ExplanationZh: "example 的意思是「例子」。",
		},
		{
			QuestionEn:    "What should you do after reading?",
			QuestionZh:    "讀完文章後應該做什麼？",
			OptionsEn:     []string{"Throw the book away", "Forget the story", "Close your eyes", "Answer the quiz questions"},
			OptionsZh:     []string{"把書丟掉", "忘記故事", "閉上眼睛", "回答測驗題目"},
			Answer:        "D",
			ExplanationZh: "讀完後可以用測驗檢查自己的理解。",
		},
		{
			QuestionEn:    "Which language is the translation written in?",
			QuestionZh:    "翻譯使用哪一種語言？",
			OptionsEn:     []string{"Traditional Chinese", "Japanese", "French", "Spanish"},
			OptionsZh:     []string{"繁體中文", "日文", "法文", "西班牙文"},
			Answer:        "A",
			ExplanationZh: "所有中文內容都使用繁體中文。",
		},
	}
}
