package scoring

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var scoreTokenPattern = regexp.MustCompile(`(?i)score\D*(\d{1,2}(?:\.\d)?)`)

// ParseReply extracts a Result from a free-form model reply using a two-stage
// strategy. Stage one strips code fences and decodes the widest {...} block;
// the payload is accepted when it carries a "score" key (an uncoercible score
// value degrades to 0.0 rather than failing). Stage two searches the raw text
// for a "score" token followed by a number; when stage one decoded an object
// without a score, its fields are kept and only the missing pieces are filled
// in. Both stages failing is a parse failure.
//
// The lenience is deliberate: models routinely wrap their JSON in prose or
// skip it entirely, and a best-effort number beats discarding the reply.
func ParseReply(text string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("empty reply")
	}

	var partial map[string]any
	if payload := extractJSONObject(trimmed); payload != "" {
		var raw map[string]any
		if err := json.Unmarshal([]byte(payload), &raw); err == nil {
			if _, ok := raw["score"]; ok {
				result := resultFromMap(raw)
				return &result, nil
			}
			partial = raw
		}
	}

	if match := scoreTokenPattern.FindStringSubmatch(trimmed); match != nil {
		if score, err := strconv.ParseFloat(match[1], 64); err == nil {
			result := resultFromMap(partial)
			result.Score = score
			if _, ok := partial["feedback"]; !ok {
				result.Feedback = trimmed
			}
			return &result, nil
		}
	}

	return nil, errors.New("no score found in reply")
}

// extractJSONObject returns the widest brace-delimited substring after
// removing a surrounding markdown code fence, or "" when none exists.
func extractJSONObject(content string) string {
	trimmed := strings.TrimSpace(stripCodeFence(content))
	if trimmed == "" {
		return ""
	}
	start := strings.Index(trimmed, "{")
	if start < 0 {
		return ""
	}
	end := strings.LastIndex(trimmed, "}")
	if end <= start {
		return ""
	}
	return strings.TrimSpace(trimmed[start : end+1])
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := trimmed[3:]
	body = strings.TrimLeft(body, " \t\r\n")
	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		body = strings.TrimLeft(body[4:], " \t\r\n")
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
