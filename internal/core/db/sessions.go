package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

// CreateSession persists a new session with a fresh identifier, status "new",
// and created/updated timestamps set to now. The full record is returned.
func (db *DB) CreateSession(name string, provider models.CloudProvider, start, end time.Time) (*models.Session, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	s := &models.Session{
		ID:            uuid.NewString(),
		Name:          name,
		CloudProvider: provider,
		StartTime:     start,
		EndTime:       end,
		Status:        models.SessionNew,
	}
	s.CreatedAt = now()
	s.UpdatedAt = s.CreatedAt

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	_, err := db.conn.Exec(`
		INSERT INTO sessions (id, name, created_at, updated_at, cloud_provider, start_time, end_time, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.ID,
		s.Name,
		s.CreatedAt.UnixMilli(),
		s.UpdatedAt.UnixMilli(),
		string(s.CloudProvider),
		s.StartTime.UnixMilli(),
		s.EndTime.UnixMilli(),
		string(s.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	return s, nil
}

// GetSession returns the session with the given id, or nil if none exists.
func (db *DB) GetSession(id string) (*models.Session, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	row := db.conn.QueryRow(`
		SELECT id, name, created_at, updated_at, cloud_provider, start_time, end_time, status
		FROM sessions WHERE id = ?
	`, id)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// ListSessions returns all sessions, most recently updated first.
func (db *DB) ListSessions() ([]*models.Session, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT id, name, created_at, updated_at, cloud_provider, start_time, end_time, status
		FROM sessions
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// UpdateSession overwrites all mutable fields of the session identified by
// s.ID. UpdatedAt is always stamped with the current time before writing,
// regardless of the caller-supplied value; s is updated in place to match.
func (db *DB) UpdateSession(s *models.Session) error {
	if err := db.ready(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}

	s.UpdatedAt = now()

	res, err := db.conn.Exec(`
		UPDATE sessions
		SET name = ?, updated_at = ?, cloud_provider = ?, start_time = ?, end_time = ?, status = ?
		WHERE id = ?
	`,
		s.Name,
		s.UpdatedAt.UnixMilli(),
		string(s.CloudProvider),
		s.StartTime.UnixMilli(),
		s.EndTime.UnixMilli(),
		string(s.Status),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update session: no session with id %s", s.ID)
	}
	return nil
}

// DeleteSession removes the session and everything it owns: its logs, then its
// log groups, then the session row itself. The three deletes run inside one
// transaction so a crash cannot leave orphaned rows behind.
func (db *DB) DeleteSession(id string) error {
	if err := db.ready(); err != nil {
		return err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Dependency order: logs reference groups, groups reference the session.
	if _, err := tx.Exec(`DELETE FROM logs WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session logs: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM log_groups WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session groups: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return tx.Commit()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var createdAt, updatedAt, startTime, endTime int64
	var provider, status string
	err := row.Scan(&s.ID, &s.Name, &createdAt, &updatedAt, &provider, &startTime, &endTime, &status)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = time.UnixMilli(createdAt)
	s.UpdatedAt = time.UnixMilli(updatedAt)
	s.StartTime = time.UnixMilli(startTime)
	s.EndTime = time.UnixMilli(endTime)
	s.CloudProvider = models.CloudProvider(provider)
	s.Status = models.SessionStatus(status)
	return &s, nil
}
