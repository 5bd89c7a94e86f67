package store_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"prepdrill/internal/scoring"
	"prepdrill/internal/store"
	"prepdrill/internal/testsupport"
)

func TestOpenInitializesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	session := testsupport.NewSession(t, st, store.User{Name: "Iris", Email: "iris@example.com", Domain: "hr"})
	if session.ID == 0 {
		t.Fatal("expected session ID to be assigned")
	}
	if session.UserName != "Iris" || session.Domain != "hr" {
		t.Fatalf("unexpected session: %#v", session)
	}
	if session.StartedAt.IsZero() {
		t.Fatal("expected started_at to be recorded")
	}
	if session.EndedAt != nil {
		t.Fatal("new session must not have ended_at")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first := testsupport.MustOpenStore(t, cfg)
	testsupport.NewSession(t, first, store.User{Name: "Iris"})
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := testsupport.MustOpenStore(t, cfg)
	sessions, err := second.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected surviving session after reopen, got %d", len(sessions))
	}
}

func TestAppendResponseRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	session := testsupport.NewSession(t, st, store.User{Name: "Iris", Domain: "technical"})

	ctx := context.Background()
	result := scoring.Result{
		Score:    7.5,
		Feedback: "Good answer — clear and relevant.",
		Extra: map[string]any{
			"polarity":  0.32,
			"relevance": 0.25,
		},
	}
	saved, err := st.AppendResponse(ctx, session.ID, "Tell me about yourself.", "I build backend services.", result)
	if err != nil {
		t.Fatalf("AppendResponse failed: %v", err)
	}
	if saved.ID == 0 || saved.SessionID != session.ID {
		t.Fatalf("unexpected response row: %#v", saved)
	}

	responses, err := st.ResponsesForSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("ResponsesForSession failed: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("expected one response, got %d", len(responses))
	}
	got := responses[0]
	if got.Question != "Tell me about yourself." || got.Answer != "I build backend services." {
		t.Fatalf("round trip lost question/answer: %#v", got)
	}
	if math.Abs(got.Score-7.5) > 0.05 {
		t.Fatalf("round trip changed score: %v", got.Score)
	}
	if got.Feedback.Feedback != result.Feedback {
		t.Fatalf("round trip changed feedback: %q", got.Feedback.Feedback)
	}
	if got.Feedback.Extra["polarity"] != 0.32 {
		t.Fatalf("round trip lost extras: %#v", got.Feedback.Extra)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be recorded")
	}
}

func TestResponsesKeepSubmissionOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	session := testsupport.NewSession(t, st, store.User{Name: "Iris"})

	ctx := context.Background()
	const n = 5
	for i := 0; i < n; i++ {
		question := fmt.Sprintf("Question %d?", i)
		result := scoring.Result{Score: float64(i), Feedback: "f"}
		if _, err := st.AppendResponse(ctx, session.ID, question, "answer", result); err != nil {
			t.Fatalf("AppendResponse %d failed: %v", i, err)
		}
	}

	responses, err := st.ResponsesForSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("ResponsesForSession failed: %v", err)
	}
	if len(responses) != n {
		t.Fatalf("expected %d responses, got %d", n, len(responses))
	}
	for i, response := range responses {
		if response.Question != fmt.Sprintf("Question %d?", i) {
			t.Fatalf("response %d out of order: %q", i, response.Question)
		}
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := testsupport.NewSession(t, st, store.User{Name: "Iris"})
	second := testsupport.NewSession(t, st, store.User{Name: "Noah"})

	if _, err := st.AppendResponse(ctx, first.ID, "Q1", "A1", scoring.Result{Score: 5, Feedback: "f"}); err != nil {
		t.Fatalf("AppendResponse failed: %v", err)
	}
	if _, err := st.AppendResponse(ctx, second.ID, "Q2", "A2", scoring.Result{Score: 6, Feedback: "f"}); err != nil {
		t.Fatalf("AppendResponse failed: %v", err)
	}

	responses, err := st.ResponsesForSession(ctx, first.ID)
	if err != nil {
		t.Fatalf("ResponsesForSession failed: %v", err)
	}
	if len(responses) != 1 || responses[0].Question != "Q1" {
		t.Fatalf("session logs leaked across sessions: %#v", responses)
	}
}

func TestAppendResponseUnknownSession(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	_, err := st.AppendResponse(context.Background(), 999, "Q", "A", scoring.Result{Score: 1, Feedback: "f"})
	if !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCloseSessionRecordsEndedAt(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	session := testsupport.NewSession(t, st, store.User{Name: "Iris"})
	ctx := context.Background()

	if err := st.CloseSession(ctx, session.ID); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}
	closed, err := st.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if closed.EndedAt == nil {
		t.Fatal("expected ended_at after close")
	}

	first := *closed.EndedAt
	if err := st.CloseSession(ctx, session.ID); err != nil {
		t.Fatalf("second CloseSession failed: %v", err)
	}
	again, err := st.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !again.EndedAt.Equal(first) {
		t.Fatal("closing twice must keep the original ended_at")
	}

	if err := st.CloseSession(ctx, 999); !errors.Is(err, store.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for unknown session, got %v", err)
	}
}

func TestListSessions(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	testsupport.NewSession(t, st, store.User{Name: "Iris"})
	testsupport.NewSession(t, st, store.User{Name: "Noah"})

	sessions, err := st.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 || sessions[0].UserName != "Iris" || sessions[1].UserName != "Noah" {
		t.Fatalf("unexpected sessions: %#v", sessions)
	}
}
