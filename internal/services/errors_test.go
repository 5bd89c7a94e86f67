package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"prepdrill/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrProvider, "openai", "score", "request failed", base)
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected provider marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped base error, got %v", err)
	}
	if !strings.Contains(err.Error(), "openai: score: request failed") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "gemini", "score", "", nil)
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected default provider marker, got %v", err)
	}
}

func TestRecoverable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"configuration", services.Wrap(services.ErrConfiguration, "openai", "score", "api key required", nil), true},
		{"unavailable", services.Wrap(services.ErrUnavailable, "", "", "unknown provider", nil), true},
		{"provider", services.Wrap(services.ErrProvider, "gemini", "score", "http 500", nil), true},
		{"parse", services.Wrap(services.ErrParse, "openai", "score", "no score token", nil), true},
		{"plain", fmt.Errorf("insert response: disk I/O error"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.Recoverable(tc.err); got != tc.want {
				t.Fatalf("Recoverable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
