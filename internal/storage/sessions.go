package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session kinds.
const (
	KindShuffle = "shuffle"
	KindSolve   = "solve"
)

// Session represents a shuffle or solve run in the database.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	CubeSize   int
	Kind       string
	Solved     bool
	Notes      *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(cubeSize int, kind, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, cube_size, kind, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), cubeSize, kind, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete and records whether the cube ended solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, boolToInt(solved), sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID. Returns nil when no session exists.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var solved int

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, cube_size, kind, solved, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.CubeSize, &s.Kind, &solved, &s.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.Solved = solved != 0
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, cube_size, kind, solved, notes
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAtStr string
		var endedAtStr sql.NullString
		var solved int

		if err := rows.Scan(
			&s.SessionID, &startedAtStr, &endedAtStr,
			&s.DurationMs, &s.CubeSize, &s.Kind, &solved, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.Solved = solved != 0
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if endedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, endedAtStr.String)
			s.EndedAt = &t
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// GetMoveCount returns the number of moves recorded for a session.
func (r *SessionRepository) GetMoveCount(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
