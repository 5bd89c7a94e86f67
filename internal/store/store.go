package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"prepdrill/internal/config"
	"prepdrill/internal/scoring"
)

// ErrSessionNotFound indicates an operation referenced a session id that was
// never created.
var ErrSessionNotFound = errors.New("session not found")

// Store manages session persistence backed by SQLite. The handle is
// process-wide and safe for concurrent sessions: each session's response log
// is partitioned by session id and written append-only.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the session database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// CreateSession inserts a session row for the given user and returns it.
func (s *Store) CreateSession(ctx context.Context, user User) (*Session, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (user_name, user_email, domain, started_at) VALUES (?, ?, ?, ?)`,
		user.Name,
		user.Email,
		user.Domain,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetSession(ctx, id)
}

// GetSession fetches a session by identifier.
func (s *Store) GetSession(ctx context.Context, id int64) (*Session, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, user_name, user_email, domain, started_at, ended_at FROM sessions WHERE id = ?`,
		id,
	)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	return session, nil
}

// ListSessions returns every session in creation order.
func (s *Store) ListSessions(ctx context.Context) ([]*Session, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_name, user_email, domain, started_at, ended_at FROM sessions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// AppendResponse records one submitted answer with its score result. The
// feedback column stores the full result as JSON; the score column mirrors
// result.Score so summaries can aggregate without decoding JSON.
func (s *Store) AppendResponse(ctx context.Context, sessionID int64, question, answer string, result scoring.Result) (*Response, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	feedbackJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO responses (session_id, question, answer, feedback, score, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID,
		question,
		answer,
		string(feedbackJSON),
		result.Score,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.getResponse(ctx, id)
}

// ResponsesForSession returns the session's response log in submission order.
func (s *Store) ResponsesForSession(ctx context.Context, sessionID int64) ([]*Response, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, session_id, question, answer, feedback, score, created_at FROM responses WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query responses for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var responses []*Response
	for rows.Next() {
		response, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return responses, nil
}

// CloseSession records the session's completion time. Closing an already
// closed session keeps the original ended_at.
func (s *Store) CloseSession(ctx context.Context, sessionID int64) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		timestamp,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("close session %d: %w", sessionID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		if _, err := s.GetSession(ctx, sessionID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) getResponse(ctx context.Context, id int64) (*Response, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, session_id, question, answer, feedback, score, created_at FROM responses WHERE id = ?`,
		id,
	)
	response, err := scanResponse(row)
	if err != nil {
		return nil, fmt.Errorf("get response %d: %w", id, err)
	}
	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var session Session
	var startedAt string
	var endedAt sql.NullString
	if err := row.Scan(&session.ID, &session.UserName, &session.UserEmail, &session.Domain, &startedAt, &endedAt); err != nil {
		return nil, err
	}
	var err error
	if session.StartedAt, err = parseTimestamp(startedAt); err != nil {
		return nil, err
	}
	if endedAt.Valid {
		ended, err := parseTimestamp(endedAt.String)
		if err != nil {
			return nil, err
		}
		session.EndedAt = &ended
	}
	return &session, nil
}

func scanResponse(row rowScanner) (*Response, error) {
	var response Response
	var feedbackJSON string
	var createdAt string
	if err := row.Scan(&response.ID, &response.SessionID, &response.Question, &response.Answer, &feedbackJSON, &response.Score, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(feedbackJSON), &response.Feedback); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	var err error
	if response.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &response, nil
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}
