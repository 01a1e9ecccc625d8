package llm

import "strings"

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens, sourced from models.dev.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// Dated snapshots ("gpt-4o-mini-2024-07-18") resolve to the longest
// listed model that prefixes them.
func LookupCost(modelID string) *ModelCost {
	modelID = strings.TrimPrefix(modelID, "models/")
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	best := ""
	for id := range modelCosts {
		if strings.HasPrefix(modelID, id+"-") && len(id) > len(best) {
			best = id
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}

// modelCosts covers the models the lesson generator is configured with.
var modelCosts = map[string]ModelCost{
	// Google (Gemini)
	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-1.5-flash-8b":   {0.0375, 0.15},
	"gemini-1.5-pro":        {1.25, 5},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},

	// Anthropic
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
}
