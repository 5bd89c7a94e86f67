package scoring

import (
	"encoding/json"
	"testing"
)

func TestResultJSONRoundTrip(t *testing.T) {
	original := Result{
		Score:    7.5,
		Feedback: "Clear and relevant.",
		Extra: map[string]any{
			"polarity":     0.25,
			"noun_phrases": 3.0,
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Result
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Score != original.Score || restored.Feedback != original.Feedback {
		t.Fatalf("round trip mismatch: %#v", restored)
	}
	if restored.Extra["polarity"] != 0.25 || restored.Extra["noun_phrases"] != 3.0 {
		t.Fatalf("extras lost in round trip: %#v", restored.Extra)
	}
}

func TestResultUnmarshalUnknownKeysLandInExtra(t *testing.T) {
	var result Result
	payload := `{"score": 4.2, "feedback": "ok", "provider_latency_ms": 812, "rubric": "concise"}`
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.Score != 4.2 || result.Feedback != "ok" {
		t.Fatalf("unexpected result: %#v", result)
	}
	if len(result.Extra) != 2 {
		t.Fatalf("expected two extras, got %#v", result.Extra)
	}
}

func TestCoerceScore(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"float", 7.1, 7.1, true},
		{"int", 8, 8, true},
		{"string", " 6.5 ", 6.5, true},
		{"number", json.Number("9"), 9, true},
		{"garbage string", "excellent", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := coerceScore(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("coerceScore(%v) = %v,%v want %v,%v", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestRoundAndClamp(t *testing.T) {
	if got := roundScore(7.25); got != 7.3 {
		t.Fatalf("roundScore(7.25) = %v", got)
	}
	if got := clampScore(15); got != 10 {
		t.Fatalf("clampScore(15) = %v", got)
	}
	if got := clampScore(-3); got != 0 {
		t.Fatalf("clampScore(-3) = %v", got)
	}
	if got := clampScore(9.9); got != 9.9 {
		t.Fatalf("clampScore(9.9) = %v", got)
	}
}
