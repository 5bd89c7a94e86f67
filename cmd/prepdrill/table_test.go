package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "Name"}, [][]string{{"1", "Iris"}, {"2"}}, 1)
	for _, want := range []string{"ID", "Name", "Iris", "1", "2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if got := renderTable(nil, nil); got != "" {
		t.Fatalf("expected empty output for headerless table, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 48); got != "short" {
		t.Fatalf("truncate changed a short value: %q", got)
	}
	long := strings.Repeat("a", 50)
	got := truncate(long, 10)
	if got != strings.Repeat("a", 7)+"..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
