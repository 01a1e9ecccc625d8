package lesson

import "github.com/shirley/readingcoach/internal/llm"

// ContentSchema is the JSON Schema for a lesson sent to providers with
// native structured output.
var ContentSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "A bilingual English / Traditional Chinese reading lesson with vocabulary and quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"article": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"titleEn":      map[string]any{"type": "string"},
					"titleZh":      map[string]any{"type": "string"},
					"paragraphsEn": stringArray(),
					"paragraphsZh": stringArray(),
				},
				"required":             []any{"titleEn", "titleZh", "paragraphsEn", "paragraphsZh"},
				"additionalProperties": false,
			},
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":      map[string]any{"type": "string"},
						"pos":       map[string]any{"type": "string"},
						"meaningZh": map[string]any{"type": "string"},
						"exampleEn": map[string]any{"type": "string"},
						"exampleZh": map[string]any{"type": "string"},
					},
					"required":             []any{"word", "pos", "meaningZh", "exampleEn", "exampleZh"},
					"additionalProperties": false,
				},
			},
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionEn": map[string]any{"type": "string"},
						"questionZh": map[string]any{"type": "string"},
						"optionsEn":  stringArray(),
						"optionsZh":  stringArray(),
						"answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"explanationZh": map[string]any{"type": "string"},
					},
					"required":             []any{"questionEn", "questionZh", "optionsEn", "optionsZh", "answer", "explanationZh"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"article", "vocabulary", "quiz"},
		"additionalProperties": false,
	},
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
