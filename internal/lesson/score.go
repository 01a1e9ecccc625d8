package lesson

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Unanswered is the user letter shown for a skipped question.
const Unanswered = "-"

// Answer is a student's choice for one question. It decodes from a letter
// ("B") or a 0-based option index (1); anything else is unanswered.
type Answer string

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n >= 0 && n <= 3 {
			*a = Answer(IndexLetter(n))
		} else {
			*a = ""
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Answer(s)
	return nil
}

// letter returns the normalized choice, or "" when unanswered.
func (a Answer) letter() string {
	s := strings.ToUpper(strings.TrimSpace(string(a)))
	switch s {
	case "A", "B", "C", "D":
		return s
	}
	return ""
}

// ReportRow is the review line for one question.
type ReportRow struct {
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	QuestionZh    string   `json:"questionZh"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correctIdx"`
	UserIndex     int      `json:"userIdx"` // -1 when unanswered
	CorrectLetter string   `json:"correctLetter"`
	UserLetter    string   `json:"userLetter"`
	CorrectText   string   `json:"correctText"`
	UserText      string   `json:"userText"`
	IsCorrect     bool     `json:"isCorrect"`
	ExplanationZh string   `json:"explanationZh,omitempty"`
}

// Report is a scored quiz.
type Report struct {
	Score int         `json:"score"`
	Total int         `json:"total"`
	Rows  []ReportRow `json:"rows"`
}

// Percent is the score as a whole percentage.
func (r Report) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Score * 100 / r.Total
}

// Score grades answers against quiz. answers[i] belongs to quiz[i]; missing
// entries count as unanswered.
func Score(quiz []QuizItem, answers []Answer) Report {
	r := Report{Total: len(quiz), Rows: make([]ReportRow, 0, len(quiz))}
	for i, q := range quiz {
		correct := LetterIndex(q.Answer)
		row := ReportRow{
			Number:        i + 1,
			Question:      q.QuestionEn,
			QuestionZh:    q.QuestionZh,
			Options:       nonNil(q.OptionsEn),
			CorrectIndex:  correct,
			UserIndex:     -1,
			CorrectLetter: IndexLetter(correct),
			UserLetter:    Unanswered,
			CorrectText:   optionAt(q.OptionsEn, correct),
			ExplanationZh: q.ExplanationZh,
		}
		if i < len(answers) {
			if l := answers[i].letter(); l != "" {
				row.UserIndex = LetterIndex(l)
				row.UserLetter = l
				row.UserText = optionAt(q.OptionsEn, row.UserIndex)
			}
		}
		row.IsCorrect = row.UserIndex == correct
		if row.IsCorrect {
			r.Score++
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

func optionAt(opts []string, i int) string {
	if i < 0 || i >= len(opts) {
		return ""
	}
	return opts[i]
}
