package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Result is the contract every scorer satisfies: a score in [0,10], feedback
// text, and optional extra fields (polarity, relevance, provider-specific
// detail) that are preserved opaquely for persistence but never interpreted
// by the orchestration layer.
type Result struct {
	Score    float64
	Feedback string
	Extra    map[string]any
}

// MarshalJSON flattens the result into a single object so extras sit next to
// score and feedback, matching the stored transcript layout.
func (r Result) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(r.Extra)+2)
	for key, value := range r.Extra {
		payload[key] = value
	}
	payload["score"] = r.Score
	payload["feedback"] = r.Feedback
	return json.Marshal(payload)
}

// UnmarshalJSON is the inverse of MarshalJSON: known keys populate the struct
// and every other key lands in Extra unchanged.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = resultFromMap(raw)
	return nil
}

func resultFromMap(raw map[string]any) Result {
	result := Result{}
	for key, value := range raw {
		switch key {
		case "score":
			if score, ok := coerceScore(value); ok {
				result.Score = score
			}
		case "feedback":
			if text, ok := value.(string); ok {
				result.Feedback = text
			}
		default:
			if result.Extra == nil {
				result.Extra = make(map[string]any)
			}
			result.Extra[key] = value
		}
	}
	return result
}

// coerceScore converts the loosely-typed score values remote providers emit
// (numbers, numeric strings, json.Number) into a float64.
func coerceScore(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}

func clampScore(score float64) float64 {
	switch {
	case score < 0 || math.IsNaN(score):
		return 0
	case score > 10:
		return 10
	default:
		return score
	}
}

func clamp01(value float64) float64 {
	switch {
	case value < 0 || math.IsNaN(value):
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
