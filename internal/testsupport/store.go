package testsupport

import (
	"context"
	"testing"

	"prepdrill/internal/config"
	"prepdrill/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewSession creates a session row for tests using the provided store.
func NewSession(t testing.TB, st *store.Store, user store.User) *store.Session {
	t.Helper()

	session, err := st.CreateSession(context.Background(), user)
	if err != nil {
		t.Fatalf("store.CreateSession: %v", err)
	}
	return session
}
