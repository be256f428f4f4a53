// Package report renders a markdown summary of a debugging session: its
// metadata, every log group with recorded root cause and fix, and log counts.
package report

import (
	"fmt"
	"time"

	"github.com/cbroglie/mustache"

	"github.com/logsleuth/logsleuth/internal/core/db"
)

// DefaultTemplate is used unless the config points at a custom one.
const DefaultTemplate = `# {{name}}

**Session ID:** ` + "`{{id}}`" + `
**Provider:** {{provider}}
**Range:** {{start}} to {{end}}
**Status:** {{status}}
**Logs:** {{log_count}}

{{#groups}}
## {{name}}

{{#description}}{{description}}{{/description}}

- Status: {{status}}
- Logs: {{log_count}}
{{#root_cause}}- Root cause: {{root_cause}}
{{/root_cause}}{{#suggested_fix}}- Suggested fix: {{suggested_fix}}
{{/suggested_fix}}
{{/groups}}
{{^groups}}
_No log groups yet._
{{/groups}}
`

// RenderSession builds the report for one session. template may be empty to
// use DefaultTemplate.
func RenderSession(store *db.DB, sessionID, template string) (string, error) {
	session, err := store.GetSession(sessionID)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", fmt.Errorf("no session with id %s", sessionID)
	}

	logs, err := store.GetSessionLogs(sessionID)
	if err != nil {
		return "", err
	}
	groups, err := store.GetSessionLogGroups(sessionID)
	if err != nil {
		return "", err
	}

	groupData := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		groupLogs, err := store.GetGroupLogs(g.ID)
		if err != nil {
			return "", err
		}
		groupData = append(groupData, map[string]interface{}{
			"name":          g.Name,
			"description":   g.Description,
			"status":        string(g.Status),
			"log_count":     len(groupLogs),
			"root_cause":    g.RootCause,
			"suggested_fix": g.SuggestedFix,
		})
	}

	data := map[string]interface{}{
		"id":        session.ID,
		"name":      session.Name,
		"provider":  string(session.CloudProvider),
		"start":     formatTime(session.StartTime),
		"end":       formatTime(session.EndTime),
		"status":    string(session.Status),
		"log_count": len(logs),
		"groups":    groupData,
	}

	if template == "" {
		template = DefaultTemplate
	}
	out, err := mustache.Render(template, data)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04:05")
}
