package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

// SaveLogs bulk-inserts a batch of logs as a single atomic unit: either every
// row is visible afterward or none are. On any row failure the transaction is
// rolled back and the error is returned wrapped in ErrWriteFailed.
func (db *DB) SaveLogs(logs []*models.Log) error {
	if err := db.ready(); err != nil {
		return err
	}
	if len(logs) == 0 {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, l := range logs {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%w: invalid log: %v", ErrWriteFailed, err)
		}
		var groupID sql.NullString
		if l.GroupID != nil {
			groupID = sql.NullString{String: *l.GroupID, Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO logs (id, session_id, log_content, timestamp, service, log_level, group_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			l.ID,
			l.SessionID,
			l.Content,
			l.Timestamp.UnixMilli(),
			nullable(l.Service),
			nullable(l.Level),
			groupID,
		)
		if err != nil {
			return fmt.Errorf("%w: insert log %s: %v", ErrWriteFailed, l.ID, err)
		}
	}

	return tx.Commit()
}

// GetSessionLogs returns all logs belonging to a session, oldest first.
func (db *DB) GetSessionLogs(sessionID string) ([]*models.Log, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	return db.queryLogs(`
		SELECT id, session_id, log_content, timestamp, service, log_level, group_id
		FROM logs WHERE session_id = ?
		ORDER BY timestamp ASC
	`, sessionID)
}

// GetGroupLogs returns all logs assigned to a group, oldest first.
func (db *DB) GetGroupLogs(groupID string) ([]*models.Log, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	return db.queryLogs(`
		SELECT id, session_id, log_content, timestamp, service, log_level, group_id
		FROM logs WHERE group_id = ?
		ORDER BY timestamp ASC
	`, groupID)
}

func (db *DB) queryLogs(query string, args ...interface{}) ([]*models.Log, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.Log
	for rows.Next() {
		var l models.Log
		var ts int64
		var service, level, groupID sql.NullString
		if err := rows.Scan(&l.ID, &l.SessionID, &l.Content, &ts, &service, &level, &groupID); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		l.Timestamp = time.UnixMilli(ts)
		l.Service = service.String
		l.Level = level.String
		if groupID.Valid {
			gid := groupID.String
			l.GroupID = &gid
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// nullable maps "" to NULL so optional text columns stay NULL on disk.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
