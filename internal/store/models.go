package store

import (
	"time"

	"prepdrill/internal/scoring"
)

// User describes the person running a practice session. Users are ephemeral:
// they are embedded into the session row, never persisted independently.
type User struct {
	Name   string
	Email  string
	Domain string
}

// Session is one practice run for one user in one domain. Immutable after
// creation except for closure, which records ended_at.
type Session struct {
	ID        int64
	UserName  string
	UserEmail string
	Domain    string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Response is one (question, answer, score, feedback) record tied to a
// session. Responses are append-only: never mutated or deleted.
type Response struct {
	ID        int64
	SessionID int64
	Question  string
	Answer    string
	Feedback  scoring.Result
	Score     float64
	CreatedAt time.Time
}
