package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := db.New(filepath.Join(t.TempDir(), "logsleuth.db"))
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	m := NewManager(store)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestCurrent_StartsNil(t *testing.T) {
	m := newTestManager(t)
	if m.Current() != nil {
		t.Error("Current() should be nil before any SetCurrent")
	}
}

func TestSetCurrent(t *testing.T) {
	m := newTestManager(t)

	session, err := m.CreateSession("Outage-42", models.ProviderAWS, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.SetCurrent(session.ID)
	if err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	if got == nil || got.ID != session.ID {
		t.Fatalf("SetCurrent() = %+v, want session %s", got, session.ID)
	}
	if current := m.Current(); current == nil || current.ID != session.ID {
		t.Errorf("Current() = %+v, want session %s", current, session.ID)
	}
}

// A failed switch must not clear the existing selection.
func TestSetCurrent_UnknownIDKeepsSelection(t *testing.T) {
	m := newTestManager(t)

	session, err := m.CreateSession("S1", models.ProviderGCP, time.Now(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetCurrent(session.ID); err != nil {
		t.Fatal(err)
	}

	got, err := m.SetCurrent("no-such-id")
	if err != nil {
		t.Fatalf("SetCurrent(unknown) error = %v, want nil", err)
	}
	if got != nil {
		t.Errorf("SetCurrent(unknown) = %+v, want nil", got)
	}
	if current := m.Current(); current == nil || current.ID != session.ID {
		t.Errorf("Current() = %+v, want S1 unchanged", current)
	}
}

func TestDeleteSession_ClearsCurrent(t *testing.T) {
	m := newTestManager(t)

	session, err := m.CreateSession("doomed", models.ProviderAzure, time.Now(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetCurrent(session.ID); err != nil {
		t.Fatal(err)
	}

	if err := m.DeleteSession(session.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if m.Current() != nil {
		t.Error("Current() should be nil after deleting the current session")
	}
}

func TestDeleteSession_OtherKeepsCurrent(t *testing.T) {
	m := newTestManager(t)

	keep, err := m.CreateSession("keep", models.ProviderAWS, time.Now(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	drop, err := m.CreateSession("drop", models.ProviderAWS, time.Now(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetCurrent(keep.ID); err != nil {
		t.Fatal(err)
	}

	if err := m.DeleteSession(drop.ID); err != nil {
		t.Fatal(err)
	}
	if current := m.Current(); current == nil || current.ID != keep.ID {
		t.Errorf("Current() = %+v, want keep", current)
	}
}

func TestUpdateSession_RefreshesCurrent(t *testing.T) {
	m := newTestManager(t)

	session, err := m.CreateSession("refresh", models.ProviderAWS, time.Now(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetCurrent(session.ID); err != nil {
		t.Fatal(err)
	}

	session.Status = models.SessionInProgress
	if err := m.UpdateSession(session); err != nil {
		t.Fatal(err)
	}
	if current := m.Current(); current.Status != models.SessionInProgress {
		t.Errorf("Current().Status = %q, want in_progress after update", current.Status)
	}
}

// The Manager adds no error taxonomy of its own; store errors pass through.
func TestPassThroughAfterClose(t *testing.T) {
	m := newTestManager(t)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := m.ListSessions(); err == nil {
		t.Error("ListSessions() after Close should surface the store error")
	}
}

// End-to-end through the coordinator: mirrors the store-level scenario but
// exercises every delegation.
func TestCoordinatorEndToEnd(t *testing.T) {
	m := newTestManager(t)

	end := time.Now().Truncate(time.Millisecond)
	session, err := m.CreateSession("Outage-42", models.ProviderAWS, end.Add(-24*time.Hour), end)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.SetCurrent(session.ID); err != nil {
		t.Fatal(err)
	}

	if err := m.SaveLogs([]*models.Log{
		{ID: "L1", SessionID: session.ID, Content: "error from A", Timestamp: end.Add(-2 * time.Hour), Service: "ServiceA", Level: "error"},
		{ID: "L2", SessionID: session.ID, Content: "warn from B", Timestamp: end.Add(-time.Hour), Service: "ServiceB", Level: "warn"},
	}); err != nil {
		t.Fatal(err)
	}

	group, err := m.CreateLogGroup(session.ID, "Service A errors", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AssignLogsToGroup(group.ID, []string{"L1"}); err != nil {
		t.Fatal(err)
	}

	group.RootCause = "bad deploy"
	group.SuggestedFix = "roll back"
	group.Status = models.GroupAnalyzed
	if err := m.UpdateLogGroup(group); err != nil {
		t.Fatal(err)
	}

	groupLogs, err := m.GroupLogs(group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(groupLogs) != 1 || groupLogs[0].ID != "L1" {
		t.Errorf("GroupLogs() = %+v, want [L1]", groupLogs)
	}

	sessionLogs, err := m.SessionLogs(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessionLogs) != 2 || sessionLogs[0].ID != "L1" || sessionLogs[1].ID != "L2" {
		t.Errorf("SessionLogs() = %+v, want [L1, L2]", sessionLogs)
	}

	groups, err := m.SessionLogGroups(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].RootCause != "bad deploy" {
		t.Errorf("SessionLogGroups() = %+v", groups)
	}
}
