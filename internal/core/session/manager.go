// Package session coordinates which debugging session is active within a
// running process and fronts the record store for every consumer.
package session

import (
	"sync"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
)

// Manager is the single entry point consumers use instead of touching the
// store directly. It owns the process-local "current session" pointer; the
// pointer is a cache, not a source of truth, and starts out nil on every
// process start.
type Manager struct {
	store *db.DB

	mu      sync.RWMutex
	current *models.Session
}

// NewManager wraps an open store. One Manager per store instance.
func NewManager(store *db.DB) *Manager {
	return &Manager{store: store}
}

// Current returns the active session, or nil if none has been selected. It
// never touches the store.
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetCurrent looks the session up in the store and makes it current. If no
// session with that id exists, the existing selection is left unchanged and
// nil is returned; a failed switch never clears a working one.
func (m *Manager) SetCurrent(id string) (*models.Session, error) {
	s, err := m.store.GetSession(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s, nil
}

// CreateSession delegates to the store.
func (m *Manager) CreateSession(name string, provider models.CloudProvider, start, end time.Time) (*models.Session, error) {
	return m.store.CreateSession(name, provider, start, end)
}

// GetSession delegates to the store.
func (m *Manager) GetSession(id string) (*models.Session, error) {
	return m.store.GetSession(id)
}

// ListSessions delegates to the store.
func (m *Manager) ListSessions() ([]*models.Session, error) {
	return m.store.ListSessions()
}

// UpdateSession delegates to the store. If the updated session is current,
// the cached pointer is refreshed so Current() reflects the write.
func (m *Manager) UpdateSession(s *models.Session) error {
	if err := m.store.UpdateSession(s); err != nil {
		return err
	}
	m.mu.Lock()
	if m.current != nil && m.current.ID == s.ID {
		copied := *s
		m.current = &copied
	}
	m.mu.Unlock()
	return nil
}

// DeleteSession delegates to the store. Deleting the current session clears
// the selection; Current() must never return a session that no longer exists.
func (m *Manager) DeleteSession(id string) error {
	if err := m.store.DeleteSession(id); err != nil {
		return err
	}
	m.mu.Lock()
	if m.current != nil && m.current.ID == id {
		m.current = nil
	}
	m.mu.Unlock()
	return nil
}

// SaveLogs delegates to the store.
func (m *Manager) SaveLogs(logs []*models.Log) error {
	return m.store.SaveLogs(logs)
}

// SessionLogs delegates to the store.
func (m *Manager) SessionLogs(sessionID string) ([]*models.Log, error) {
	return m.store.GetSessionLogs(sessionID)
}

// CreateLogGroup delegates to the store.
func (m *Manager) CreateLogGroup(sessionID, name, description string) (*models.LogGroup, error) {
	return m.store.CreateLogGroup(sessionID, name, description)
}

// LogGroup delegates to the store.
func (m *Manager) LogGroup(id string) (*models.LogGroup, error) {
	return m.store.GetLogGroup(id)
}

// SessionLogGroups delegates to the store.
func (m *Manager) SessionLogGroups(sessionID string) ([]*models.LogGroup, error) {
	return m.store.GetSessionLogGroups(sessionID)
}

// UpdateLogGroup delegates to the store.
func (m *Manager) UpdateLogGroup(g *models.LogGroup) error {
	return m.store.UpdateLogGroup(g)
}

// AssignLogsToGroup delegates to the store.
func (m *Manager) AssignLogsToGroup(groupID string, logIDs []string) error {
	return m.store.AssignLogsToGroup(groupID, logIDs)
}

// GroupLogs delegates to the store.
func (m *Manager) GroupLogs(groupID string) ([]*models.Log, error) {
	return m.store.GetGroupLogs(groupID)
}

// Stats delegates to the store.
func (m *Manager) Stats() (*db.Stats, error) {
	return m.store.GetStats()
}

// Close releases the underlying store. Last call before process shutdown.
func (m *Manager) Close() error {
	return m.store.Close()
}
