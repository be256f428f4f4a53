package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/models"
)

func TestRenderSession(t *testing.T) {
	store, err := db.New(filepath.Join(t.TempDir(), "logsleuth.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = store.Close() }()

	session, err := store.CreateSession("Outage-42", models.ProviderAWS, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveLogs([]*models.Log{
		{ID: "l1", SessionID: session.ID, Content: "boom", Timestamp: time.Now()},
		{ID: "l2", SessionID: session.ID, Content: "ok", Timestamp: time.Now()},
	}); err != nil {
		t.Fatal(err)
	}
	group, err := store.CreateLogGroup(session.ID, "Service A errors", "5xx spike")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.AssignLogsToGroup(group.ID, []string{"l1"}); err != nil {
		t.Fatal(err)
	}
	group.RootCause = "bad deploy"
	group.SuggestedFix = "roll back"
	group.Status = models.GroupAnalyzed
	if err := store.UpdateLogGroup(group); err != nil {
		t.Fatal(err)
	}

	out, err := RenderSession(store, session.ID, "")
	if err != nil {
		t.Fatalf("RenderSession() error = %v", err)
	}

	for _, want := range []string{"# Outage-42", session.ID, "aws", "Service A errors", "bad deploy", "roll back", "analyzed"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSession_CustomTemplate(t *testing.T) {
	store, err := db.New(filepath.Join(t.TempDir(), "logsleuth.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = store.Close() }()

	session, err := store.CreateSession("custom", models.ProviderGCP, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	out, err := RenderSession(store, session.ID, "{{name}} on {{provider}}")
	if err != nil {
		t.Fatalf("RenderSession() error = %v", err)
	}
	if out != "custom on gcp" {
		t.Errorf("RenderSession() = %q, want %q", out, "custom on gcp")
	}
}

func TestRenderSession_UnknownSession(t *testing.T) {
	store, err := db.New(filepath.Join(t.TempDir(), "logsleuth.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = store.Close() }()

	if _, err := RenderSession(store, "no-such-id", ""); err == nil {
		t.Error("RenderSession() should fail for an unknown session")
	}
}
