package models

import (
	"errors"
	"time"
)

// CloudProvider identifies which cloud the session's logs were fetched from.
type CloudProvider string

const (
	ProviderAWS   CloudProvider = "aws"
	ProviderAzure CloudProvider = "azure"
	ProviderGCP   CloudProvider = "gcp"
)

// Valid reports whether p is one of the known providers.
func (p CloudProvider) Valid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return true
	}
	return false
}

// SessionStatus tracks where an investigation stands. Transitions are set by
// callers; neither the store nor the coordinator validates them.
type SessionStatus string

const (
	SessionNew        SessionStatus = "new"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session represents one debugging investigation, scoped to a cloud provider
// and a time range. It is the top-level owner of Logs and LogGroups.
type Session struct {
	ID            string // UUID, immutable after creation
	Name          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CloudProvider CloudProvider
	StartTime     time.Time
	EndTime       time.Time
	Status        SessionStatus
}

// Validate checks if the session has required fields
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if !s.CloudProvider.Valid() {
		return errors.New("unknown cloud provider: " + string(s.CloudProvider))
	}
	return nil
}
