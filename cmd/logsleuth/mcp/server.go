// Package mcp exposes the session store to LLM collaborators over the Model
// Context Protocol. The grouping and analysis collaborators drive the store
// through these tools: listing a session's logs, creating groups, assigning
// logs, and recording root-cause analysis.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/internal/core/session"
)

// SessionSummary represents a session in list results
type SessionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UpdatedAt string `json:"updated_at"`
	Current   bool   `json:"current,omitempty"`
}

// LogEntry represents a log in tool results
type LogEntry struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service,omitempty"`
	Level     string `json:"level,omitempty"`
	GroupID   string `json:"group_id,omitempty"`
}

// GroupSummary represents a log group in tool results
type GroupSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	RootCause    string `json:"root_cause,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
	LogCount     int    `json:"log_count"`
}

const timeFormat = "2006-01-02 15:04:05"

// StartServer starts the MCP server over stdio. The Manager lives for the
// whole server process, so use_session selections persist across tool calls.
func StartServer(dbPath string) error {
	store, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	mgr := session.NewManager(store)
	defer func() {
		if closeErr := mgr.Close(); closeErr != nil {
			log.Printf("Error closing database: %v", closeErr)
		}
	}()

	s := server.NewMCPServer(
		"logsleuth",
		"1.0.0",
	)

	listTool := mcp.NewTool("list_sessions",
		mcp.WithDescription("List all debugging sessions, most recently updated first. The currently selected session is marked."),
	)
	s.AddTool(listTool, makeListSessionsHandler(mgr))

	useTool := mcp.NewTool("use_session",
		mcp.WithDescription("Select the session subsequent tools default to. An unknown id leaves the current selection unchanged."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session id to select")),
	)
	s.AddTool(useTool, makeUseSessionHandler(mgr))

	logsTool := mcp.NewTool("get_session_logs",
		mcp.WithDescription("Get a session's logs ordered by timestamp. Defaults to the current session."),
		mcp.WithString("session_id",
			mcp.Description("Session id (default: current session)")),
		mcp.WithNumber("limit",
			mcp.Description("Max logs to return (default: 200)")),
	)
	s.AddTool(logsTool, makeGetSessionLogsHandler(mgr))

	groupsTool := mcp.NewTool("list_log_groups",
		mcp.WithDescription("List a session's log groups with their analysis state. Defaults to the current session."),
		mcp.WithString("session_id",
			mcp.Description("Session id (default: current session)")),
	)
	s.AddTool(groupsTool, makeListLogGroupsHandler(mgr))

	createGroupTool := mcp.NewTool("create_log_group",
		mcp.WithDescription("Create a named log group in a session. Attach logs afterward with assign_logs."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name, e.g. 'Service A connection errors'")),
		mcp.WithString("description",
			mcp.Description("Optional description of the suspected issue")),
		mcp.WithString("session_id",
			mcp.Description("Session id (default: current session)")),
	)
	s.AddTool(createGroupTool, makeCreateLogGroupHandler(mgr))

	assignTool := mcp.NewTool("assign_logs",
		mcp.WithDescription("Assign logs to a group as one atomic batch. A log already in another group is moved."),
		mcp.WithString("group_id",
			mcp.Required(),
			mcp.Description("Target group id")),
		mcp.WithArray("log_ids",
			mcp.Required(),
			mcp.Description("Ids of the logs to assign"),
			mcp.Items(map[string]any{"type": "string"})),
	)
	s.AddTool(assignTool, makeAssignLogsHandler(mgr))

	analysisTool := mcp.NewTool("record_analysis",
		mcp.WithDescription("Record root-cause analysis on a log group and mark it analyzed."),
		mcp.WithString("group_id",
			mcp.Required(),
			mcp.Description("Group id the analysis applies to")),
		mcp.WithString("root_cause",
			mcp.Required(),
			mcp.Description("Root cause text")),
		mcp.WithString("suggested_fix",
			mcp.Description("Suggested fix text")),
	)
	s.AddTool(analysisTool, makeRecordAnalysisHandler(mgr))

	return server.ServeStdio(s)
}

// resolveSession maps an optional session_id argument to a concrete id,
// falling back to the current selection.
func resolveSession(mgr *session.Manager, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}
	current := mgr.Current()
	if current == nil {
		return "", fmt.Errorf("no session selected; pass session_id or call use_session first")
	}
	return current.ID, nil
}

func makeListSessionsHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessions, err := mgr.ListSessions()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
		}

		current := mgr.Current()
		var results []SessionSummary
		for _, s := range sessions {
			results = append(results, SessionSummary{
				ID:        s.ID,
				Name:      s.Name,
				Provider:  string(s.CloudProvider),
				Status:    string(s.Status),
				StartTime: s.StartTime.Format(timeFormat),
				EndTime:   s.EndTime.Format(timeFormat),
				UpdatedAt: s.UpdatedAt.Format(timeFormat),
				Current:   current != nil && current.ID == s.ID,
			})
		}

		return jsonResult(map[string]interface{}{"sessions": results})
	}
}

func makeUseSessionHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		selected, err := mgr.SetCurrent(sessionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("switch failed: %v", err)), nil
		}
		if selected == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no session with id %s; selection unchanged", sessionID)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Current session is now %q (%s)", selected.Name, selected.ID)), nil
	}
}

func makeGetSessionLogsHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := resolveSession(mgr, request.GetString("session_id", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 200)

		logs, err := mgr.SessionLogs(sessionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
		}
		if len(logs) > limit {
			logs = logs[:limit]
		}

		var results []LogEntry
		for _, l := range logs {
			entry := LogEntry{
				ID:        l.ID,
				Content:   l.Content,
				Timestamp: l.Timestamp.Format(timeFormat),
				Service:   l.Service,
				Level:     l.Level,
			}
			if l.GroupID != nil {
				entry.GroupID = *l.GroupID
			}
			results = append(results, entry)
		}

		return jsonResult(map[string]interface{}{"logs": results})
	}
}

func makeListLogGroupsHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := resolveSession(mgr, request.GetString("session_id", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		groups, err := mgr.SessionLogGroups(sessionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
		}

		var results []GroupSummary
		for _, g := range groups {
			logs, err := mgr.GroupLogs(g.ID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
			}
			results = append(results, GroupSummary{
				ID:           g.ID,
				Name:         g.Name,
				Description:  g.Description,
				Status:       string(g.Status),
				RootCause:    g.RootCause,
				SuggestedFix: g.SuggestedFix,
				LogCount:     len(logs),
			})
		}

		return jsonResult(map[string]interface{}{"groups": results})
	}
}

func makeCreateLogGroupHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		sessionID, err := resolveSession(mgr, request.GetString("session_id", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		group, err := mgr.CreateLogGroup(sessionID, name, request.GetString("description", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("create failed: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Created group %s (%s)", group.ID, group.Name)), nil
	}
}

func makeAssignLogsHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groupID, err := request.RequireString("group_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		logIDs := request.GetStringSlice("log_ids", nil)
		if len(logIDs) == 0 {
			return mcp.NewToolResultError("log_ids must name at least one log"), nil
		}

		if err := mgr.AssignLogsToGroup(groupID, logIDs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("assign failed (batch rolled back): %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Assigned %d log(s) to group %s", len(logIDs), groupID)), nil
	}
}

func makeRecordAnalysisHandler(mgr *session.Manager) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groupID, err := request.RequireString("group_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		rootCause, err := request.RequireString("root_cause")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		group, err := mgr.LogGroup(groupID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
		}
		if group == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no group with id %s", groupID)), nil
		}

		group.RootCause = rootCause
		group.SuggestedFix = request.GetString("suggested_fix", "")
		group.Status = models.GroupAnalyzed
		if err := mgr.UpdateLogGroup(group); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("update failed: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Recorded analysis on group %s", groupID)), nil
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
