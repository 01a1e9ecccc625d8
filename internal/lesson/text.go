package lesson

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	optionLabel    = regexp.MustCompile(`^\s*[A-D][.):：]\s+`)
	listOrdinal    = regexp.MustCompile(`^\s*(?:\d+\s*[.)、:：]|[-*•])\s*`)
)

// ToParagraphs coerces a decoded JSON value into a paragraph list.
// Arrays pass through (non-string items are stringified), strings are split
// on blank lines, and anything else yields an empty list.
func ToParagraphs(v any) []string {
	out := []string{}
	switch x := v.(type) {
	case []string:
		for _, s := range x {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range x {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, p := range paragraphBreak.Split(x, -1) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// NormalizeAnswerLetter returns v when it is exactly one of A, B, C or D
// (surrounding whitespace ignored) and "A" otherwise.
func NormalizeAnswerLetter(v any) string {
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "A", "B", "C", "D":
		return s
	}
	return "A"
}

// answerLetter is the parser's answer normalization: case-folded, then
// closed over A-D.
func answerLetter(v any) string {
	return NormalizeAnswerLetter(strings.ToUpper(stringify(v)))
}

// StripOptionLabel removes leading "A." / "B)" / "C：" style labels,
// repeatedly, so doubled labels are removed too.
func StripOptionLabel(s string) string {
	for {
		loc := optionLabel.FindStringIndex(s)
		if loc == nil {
			return strings.TrimSpace(s)
		}
		s = s[loc[1]:]
	}
}

// StripOptionLabels applies StripOptionLabel to every option.
func StripOptionLabels(opts []string) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = StripOptionLabel(o)
	}
	return out
}

// LetterIndex maps A-D to 0-3. Anything else maps to 0.
func LetterIndex(letter string) int {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	default:
		return 0
	}
}

// IndexLetter maps 0-3 to A-D.
func IndexLetter(i int) string {
	if i < 0 || i > 3 {
		return "A"
	}
	return string(rune('A' + i))
}

func stripOrdinal(line string) string {
	return listOrdinal.ReplaceAllString(line, "")
}

// stringify renders a decoded JSON scalar as text.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// stringList coerces a decoded JSON array into strings. Non-arrays yield nil.
func stringList(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, strings.TrimSpace(stringify(item)))
		}
		return out
	}
	return nil
}

// firstString returns the first key of m holding a non-empty value.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(stringify(m[k])); s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first key of m that is present and non-null.
func firstValue(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
