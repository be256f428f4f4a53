package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

func newDetailViewport(detail sessionDetail, width, height int) viewport.Model {
	if width == 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}

	vp := viewport.New(width, height)
	vp.SetContent(renderDetail(detail, width))
	return vp
}

func renderDetail(detail sessionDetail, width int) string {
	var b strings.Builder
	s := detail.Session

	title := s.Name
	if title == "" {
		title = s.ID
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s · %s · %s", s.CloudProvider, s.Status, formatRange(s.StartTime, s.EndTime))))
	b.WriteString("\n\n")

	for _, g := range detail.Groups {
		b.WriteString(groupHeaderStyle.Render("▾ " + g.Name))
		b.WriteString(metaStyle.Render(fmt.Sprintf(" [%s]", g.Status)))
		b.WriteString("\n")
		if g.Description != "" {
			b.WriteString(metaStyle.Render("  " + g.Description))
			b.WriteString("\n")
		}
		if g.RootCause != "" {
			b.WriteString(metaStyle.Render("  root cause: " + g.RootCause))
			b.WriteString("\n")
		}
		if g.SuggestedFix != "" {
			b.WriteString(metaStyle.Render("  suggested fix: " + g.SuggestedFix))
			b.WriteString("\n")
		}
		for _, l := range detail.GroupLogs[g.ID] {
			b.WriteString(renderLog(l, width))
		}
		b.WriteString("\n")
	}

	if len(detail.Unassigned) > 0 {
		b.WriteString(groupHeaderStyle.Render("▾ Unassigned"))
		b.WriteString("\n")
		for _, l := range detail.Unassigned {
			b.WriteString(renderLog(l, width))
		}
	}

	if len(detail.Groups) == 0 && len(detail.Unassigned) == 0 {
		b.WriteString(metaStyle.Render("No logs in this session."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderLog(l *models.Log, width int) string {
	ts := timestampStyle.Render(l.Timestamp.UTC().Format("15:04:05.000"))
	level := levelStyle(l.Level).Render(padLevel(l.Level))

	content := l.Content
	max := width - 26
	if max > 0 && len(content) > max {
		content = content[:max-1] + "…"
	}

	prefix := "  " + ts + " " + level
	if l.Service != "" {
		prefix += " " + metaStyle.Render(l.Service)
	}
	return prefix + " " + content + "\n"
}

func padLevel(level string) string {
	if level == "" {
		return "     "
	}
	if len(level) >= 5 {
		return strings.ToUpper(level[:5])
	}
	return strings.ToUpper(level) + strings.Repeat(" ", 5-len(level))
}
