package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

type sessionListItem struct {
	session *models.Session
}

func (i sessionListItem) FilterValue() string {
	return i.session.Name
}

type sessionDelegate struct{}

func (d sessionDelegate) Height() int                             { return 2 }
func (d sessionDelegate) Spacing() int                            { return 1 }
func (d sessionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d sessionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(sessionListItem)
	if !ok {
		return
	}
	s := li.session

	title := s.Name
	if title == "" {
		title = s.ID[:8]
	}
	meta := fmt.Sprintf("%s · %s · updated %s",
		s.CloudProvider,
		s.Status,
		humanize.Time(s.UpdatedAt))

	var line string
	if index == m.Index() {
		line = selectedItemStyle.Render("> "+title) + "\n" + metaStyle.Render("  "+meta)
	} else {
		line = itemStyle.Render(title) + "\n" + metaStyle.Render("  "+meta)
	}
	fmt.Fprint(w, line)
}

func newSessionList(sessions []*models.Session, width, height int) list.Model {
	items := make([]list.Item, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionListItem{session: s})
	}

	if width == 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}

	l := list.New(items, sessionDelegate{}, width, height)
	l.Title = "Debugging Sessions"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func formatRange(start, end time.Time) string {
	const layout = "2006-01-02 15:04"
	return start.UTC().Format(layout) + " to " + end.UTC().Format(layout)
}
