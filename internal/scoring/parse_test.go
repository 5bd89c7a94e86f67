package scoring

import (
	"testing"
)

func TestParseReplyEmbeddedJSON(t *testing.T) {
	reply := `Here is my evaluation of the answer.

{"score": 8, "feedback": "Solid answer."}

Let me know if you need more detail.`

	result, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 8.0 {
		t.Fatalf("expected score 8.0, got %v", result.Score)
	}
	if result.Feedback != "Solid answer." {
		t.Fatalf("expected feedback %q, got %q", "Solid answer.", result.Feedback)
	}
}

func TestParseReplyCodeFence(t *testing.T) {
	reply := "```json\n{\"score\": 6.5, \"feedback\": \"Decent structure.\"}\n```"
	result, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 6.5 || result.Feedback != "Decent structure." {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestParseReplyRegexFallback(t *testing.T) {
	reply := "I'd say the score is about 7 out of 10"
	result, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 7.0 {
		t.Fatalf("expected score 7.0, got %v", result.Score)
	}
	if result.Feedback != reply {
		t.Fatalf("expected raw text as feedback, got %q", result.Feedback)
	}
}

func TestParseReplyStringScore(t *testing.T) {
	result, err := ParseReply(`{"score": "8.5", "feedback": "Crisp."}`)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 8.5 {
		t.Fatalf("expected coerced score 8.5, got %v", result.Score)
	}
}

func TestParseReplyUncoercibleScoreDegradesToZero(t *testing.T) {
	result, err := ParseReply(`{"score": null, "feedback": "No number given."}`)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 0.0 {
		t.Fatalf("expected score 0.0, got %v", result.Score)
	}
	if result.Feedback != "No number given." {
		t.Fatalf("unexpected feedback %q", result.Feedback)
	}
}

func TestParseReplyPreservesExtras(t *testing.T) {
	result, err := ParseReply(`{"score": 9, "feedback": "Great.", "polarity": 0.4, "model_notes": "confident"}`)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Extra["polarity"] != 0.4 {
		t.Fatalf("expected polarity extra, got %#v", result.Extra)
	}
	if result.Extra["model_notes"] != "confident" {
		t.Fatalf("expected model_notes extra, got %#v", result.Extra)
	}
}

func TestParseReplyMergesScorelessJSONWithRegexScore(t *testing.T) {
	reply := `Overall score: 7. {"feedback": "Clear but thin on detail.", "confidence": "low"}`
	result, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if result.Score != 7.0 {
		t.Fatalf("expected regex score 7.0, got %v", result.Score)
	}
	if result.Feedback != "Clear but thin on detail." {
		t.Fatalf("expected JSON feedback to survive, got %q", result.Feedback)
	}
	if result.Extra["confidence"] != "low" {
		t.Fatalf("expected JSON extras to survive, got %#v", result.Extra)
	}
}

func TestParseReplyFailures(t *testing.T) {
	for _, reply := range []string{
		"",
		"   ",
		"This answer shows strong communication skills.",
		`{"feedback": "no numeric rating here"}`,
	} {
		if _, err := ParseReply(reply); err == nil {
			t.Fatalf("expected parse failure for %q", reply)
		}
	}
}

func TestExtractJSONObjectWidestSpan(t *testing.T) {
	text := `prefix {"a": 1} middle {"b": 2} suffix`
	got := extractJSONObject(text)
	want := `{"a": 1} middle {"b": 2}`
	if got != want {
		t.Fatalf("extractJSONObject = %q, want %q", got, want)
	}
}
