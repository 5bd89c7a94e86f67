package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestScoreCommandHeuristic(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "",
		"--config", cfgPath,
		"score", "--remote=off",
		"Tell me about a challenge you faced.",
		"I once had to migrate a large legacy system under a tight deadline and coordinated the work across two teams.")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	requireContains(t, out, "Score: ")
	requireContains(t, out, "Feedback: ")
}

func TestScoreCommandJSON(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "",
		"--config", cfgPath,
		"score", "--remote=off", "--json",
		"Why do you want this role?",
		"Because the team works on problems I care about and I can contribute from day one.")
	if err != nil {
		t.Fatalf("score --json: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if _, ok := payload["score"]; !ok {
		t.Fatalf("JSON output missing score: %s", out)
	}
	if _, ok := payload["feedback"]; !ok {
		t.Fatalf("JSON output missing feedback: %s", out)
	}
}

func TestScoreCommandRejectsUnknownRemote(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCLI(t, "", "--config", cfgPath, "score", "--remote=clippy", "Q", "A"); err == nil {
		t.Fatal("expected error for unknown remote value")
	}
}

func TestQuestionCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := runCLI(t, "", "--config", cfgPath, "question", "hr")
	if err != nil {
		t.Fatalf("question: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected a question")
	}
}

func TestQuestionCommandUnknownType(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCLI(t, "", "--config", cfgPath, "question", "astrology"); err == nil {
		t.Fatal("expected error for unknown interview type")
	}
}

func TestPracticeCommandScripted(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdin := "I enjoy collaborating with designers and product managers on clearly scoped problems.\nquit\n"
	out, err := runCLI(t, stdin,
		"--config", cfgPath,
		"practice", "--remote=off", "--name", "Iris", "--type", "hr")
	if err != nil {
		t.Fatalf("practice: %v", err)
	}
	requireContains(t, out, "started")
	requireContains(t, out, "Score: ")
	requireContains(t, out, "1 answer(s)")
}

func TestPracticeCommandMixedType(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdin := "I pair with teammates on design reviews and keep feedback loops short and specific.\nquit\n"
	out, err := runCLI(t, stdin,
		"--config", cfgPath,
		"practice", "--remote=off", "--name", "Iris", "--type", "mixed")
	if err != nil {
		t.Fatalf("practice --type mixed: %v", err)
	}
	if strings.Contains(out, "No questions available") {
		t.Fatalf("mixed type must resolve to a real pool, got:\n%s", out)
	}
	requireContains(t, out, "Score: ")
	requireContains(t, out, "1 answer(s)")
}

func TestSessionsCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdin := "I focus on clear communication and honest status updates when deadlines slip.\nquit\n"
	if _, err := runCLI(t, stdin,
		"--config", cfgPath,
		"practice", "--remote=off", "--name", "Iris", "--type", "technical"); err != nil {
		t.Fatalf("practice: %v", err)
	}

	out, err := runCLI(t, "", "--config", cfgPath, "sessions")
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	requireContains(t, out, "Iris")
	requireContains(t, out, "technical")

	out, err = runCLI(t, "", "--config", cfgPath, "sessions", "show", "1")
	if err != nil {
		t.Fatalf("sessions show: %v", err)
	}
	requireContains(t, out, "Score")

	out, err = runCLI(t, "", "--config", cfgPath, "summary", "1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	requireContains(t, out, "1 answer(s)")
	requireContains(t, out, "Average score:")
}

func TestSummaryUnknownSession(t *testing.T) {
	cfgPath := writeTestConfig(t)

	if _, err := runCLI(t, "", "--config", cfgPath, "summary", "42"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestParseRemoteChoice(t *testing.T) {
	for _, value := range []string{"", "on", "off", "OpenAI", "gemini", "Yes", "NO"} {
		if _, err := parseRemoteChoice(value); err != nil {
			t.Fatalf("parseRemoteChoice(%q): %v", value, err)
		}
	}
	if _, err := parseRemoteChoice("claude"); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
