package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/internal/core/session"
)

type sessionsLoadedMsg struct {
	sessions []*models.Session
	stats    *db.Stats
}

type sessionDetailLoadedMsg struct {
	detail sessionDetail
}

type errMsg struct {
	err error
}

// sessionDetail bundles everything the detail view renders.
type sessionDetail struct {
	Session *models.Session
	Groups  []*models.LogGroup
	// GroupLogs holds each group's logs keyed by group id.
	GroupLogs  map[string][]*models.Log
	Unassigned []*models.Log
}

func loadSessions(mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		sessions, err := mgr.ListSessions()
		if err != nil {
			return errMsg{err}
		}
		stats, err := mgr.Stats()
		if err != nil {
			return errMsg{err}
		}
		return sessionsLoadedMsg{sessions: sessions, stats: stats}
	}
}

func loadSessionDetail(mgr *session.Manager, sessionID string) tea.Cmd {
	return func() tea.Msg {
		// Browsing into a session also selects it.
		selected, err := mgr.SetCurrent(sessionID)
		if err != nil {
			return errMsg{err}
		}
		if selected == nil {
			return errMsg{errNotFound(sessionID)}
		}

		groups, err := mgr.SessionLogGroups(sessionID)
		if err != nil {
			return errMsg{err}
		}

		detail := sessionDetail{
			Session:   selected,
			Groups:    groups,
			GroupLogs: make(map[string][]*models.Log, len(groups)),
		}
		for _, g := range groups {
			logs, err := mgr.GroupLogs(g.ID)
			if err != nil {
				return errMsg{err}
			}
			detail.GroupLogs[g.ID] = logs
		}

		logs, err := mgr.SessionLogs(sessionID)
		if err != nil {
			return errMsg{err}
		}
		for _, l := range logs {
			if !l.Grouped() {
				detail.Unassigned = append(detail.Unassigned, l)
			}
		}

		return sessionDetailLoadedMsg{detail: detail}
	}
}
