package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/internal/core/session"
)

type viewMode int

const (
	listView viewMode = iota
	detailView
)

type Model struct {
	mgr      *session.Manager
	mode     viewMode
	list     list.Model
	viewport viewport.Model
	width    int
	height   int
	err      error

	sessions []*models.Session
	stats    *db.Stats
	detail   *sessionDetail
}

func New(mgr *session.Manager) Model {
	return Model{
		mgr:  mgr,
		mode: listView,
	}
}

func (m Model) Init() tea.Cmd {
	return loadSessions(m.mgr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.list.Items() != nil {
			m.list.SetSize(msg.Width, msg.Height-2)
		}
		if m.mode == detailView {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			if m.mode == listView {
				return m, tea.Quit
			}
			m.mode = listView
			return m, loadSessions(m.mgr)
		case "r":
			if m.mode == listView {
				return m, loadSessions(m.mgr)
			}
		}

		switch m.mode {
		case listView:
			return m.updateList(msg)
		case detailView:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case sessionsLoadedMsg:
		m.sessions = msg.sessions
		m.stats = msg.stats
		m.list = newSessionList(msg.sessions, m.width, m.height-2)
		return m, nil

	case sessionDetailLoadedMsg:
		m.detail = &msg.detail
		m.viewport = newDetailViewport(msg.detail, m.width, m.height-2)
		m.mode = detailView
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit"
	}

	switch m.mode {
	case detailView:
		return m.viewport.View() + "\n" + footerStyle.Render("esc back · j/k scroll · ctrl+c quit")
	default:
		if m.list.Items() == nil {
			return "Loading sessions..."
		}
		footer := "enter open · r refresh · q quit"
		if m.stats != nil {
			footer = fmt.Sprintf("%d sessions · %d logs · %d groups  |  %s",
				m.stats.TotalSessions, m.stats.TotalLogs, m.stats.TotalGroups, footer)
		}
		return m.list.View() + "\n" + footerStyle.Render(footer)
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.list.SelectedItem().(sessionListItem); ok {
			return m, loadSessionDetail(m.mgr, item.session.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func errNotFound(id string) error {
	return fmt.Errorf("no session with id %s", id)
}
