package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"prepdrill/internal/catalog"
	"prepdrill/internal/scoring"
	"prepdrill/internal/store"
)

// Manager runs practice sessions: it hands out questions from the catalog,
// scores submitted answers, and records every exchange in the store.
type Manager struct {
	store     *store.Store
	catalog   *catalog.Catalog
	evaluator *scoring.Evaluator
	logger    *slog.Logger
	pick      func(n int) int
}

type Option func(*Manager)

// WithPicker overrides the random question selector. Tests use it to make
// question order deterministic.
func WithPicker(pick func(n int) int) Option {
	return func(m *Manager) {
		m.pick = pick
	}
}

func NewManager(st *store.Store, cat *catalog.Catalog, evaluator *scoring.Evaluator, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	manager := &Manager{
		store:     st,
		catalog:   cat,
		evaluator: evaluator,
		logger:    logger,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

// Start opens a new session for the given user and returns its identifier.
func (m *Manager) Start(ctx context.Context, user store.User) (int64, error) {
	session, err := m.store.CreateSession(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	m.logger.Info("session started",
		slog.Int64("session_id", session.ID),
		slog.String("user", session.UserName),
		slog.String("domain", session.Domain))
	return session.ID, nil
}

// NextQuestion picks a question uniformly at random from the pool for the
// given interview type. Repeats are possible. The "mixed" type resolves to a
// random catalog type per question unless the catalog defines an explicit
// mixed pool. The second return value is false when no questions exist for
// the type.
func (m *Manager) NextQuestion(interviewType string) (string, bool) {
	interviewType = strings.ToLower(strings.TrimSpace(interviewType))
	pool := m.catalog.Pool(interviewType)
	if len(pool) == 0 && interviewType == "mixed" {
		if types := m.catalog.Types(); len(types) > 0 {
			pool = m.catalog.Pool(types[m.pick(len(types))])
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[m.pick(len(pool))], true
}

// Submit scores an answer and appends the exchange to the session log.
// Scoring never fails outright, but a persistence error is returned as-is:
// a response that cannot be recorded is a hard failure.
func (m *Manager) Submit(ctx context.Context, sessionID int64, question, answer string, choice scoring.RemoteChoice) (scoring.Result, error) {
	result := m.evaluator.Evaluate(ctx, question, answer, choice)
	if _, err := m.store.AppendResponse(ctx, sessionID, question, answer, result); err != nil {
		return scoring.Result{}, fmt.Errorf("record response: %w", err)
	}
	m.logger.Info("response recorded",
		slog.Int64("session_id", sessionID),
		slog.Float64("score", result.Score))
	return result, nil
}

// End closes the session. Closing an already closed session is a no-op.
func (m *Manager) End(ctx context.Context, sessionID int64) error {
	if err := m.store.CloseSession(ctx, sessionID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	m.logger.Info("session ended", slog.Int64("session_id", sessionID))
	return nil
}

// Responses returns the session's exchanges in submission order.
func (m *Manager) Responses(ctx context.Context, sessionID int64) ([]*store.Response, error) {
	return m.store.ResponsesForSession(ctx, sessionID)
}

// Session fetches a single session row.
func (m *Manager) Session(ctx context.Context, sessionID int64) (*store.Session, error) {
	return m.store.GetSession(ctx, sessionID)
}

// Summary aggregates a session's responses.
type Summary struct {
	SessionID    int64
	Count        int
	AverageScore float64
	BestScore    float64
	WorstScore   float64
}

// Summarize computes score statistics for the session. A session with no
// responses yields a zero-count summary.
func (m *Manager) Summarize(ctx context.Context, sessionID int64) (Summary, error) {
	if _, err := m.store.GetSession(ctx, sessionID); err != nil {
		return Summary{}, err
	}
	responses, err := m.store.ResponsesForSession(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{SessionID: sessionID, Count: len(responses)}
	if len(responses) == 0 {
		return summary, nil
	}
	total := 0.0
	summary.BestScore = responses[0].Score
	summary.WorstScore = responses[0].Score
	for _, response := range responses {
		total += response.Score
		if response.Score > summary.BestScore {
			summary.BestScore = response.Score
		}
		if response.Score < summary.WorstScore {
			summary.WorstScore = response.Score
		}
	}
	summary.AverageScore = total / float64(len(responses))
	return summary, nil
}
