package models

import (
	"errors"
	"time"
)

// Log is one ingested log line. Logs are created in bulk at ingestion time and
// always belong to exactly one Session.
type Log struct {
	ID        string
	SessionID string
	Content   string
	Timestamp time.Time
	Service   string // optional
	Level     string // optional, e.g. "error", "warn"

	// GroupID is nil until a grouping collaborator assigns the log to a
	// LogGroup. A log belongs to at most one group; reassignment overwrites.
	GroupID *string
}

// Grouped reports whether the log has been assigned to a group.
func (l *Log) Grouped() bool {
	return l.GroupID != nil
}

// Validate checks if the log has required fields
func (l *Log) Validate() error {
	if l.ID == "" {
		return errors.New("id is required")
	}
	if l.SessionID == "" {
		return errors.New("session_id is required")
	}
	return nil
}
