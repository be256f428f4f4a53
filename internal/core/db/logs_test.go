package db

import (
	"errors"
	"testing"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

func createTestSession(t *testing.T, database *DB) *models.Session {
	t.Helper()
	session, err := database.CreateSession("test", models.ProviderAWS, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	return session
}

func TestSaveLogs_OrderedBySessionQuery(t *testing.T) {
	database := newTestDB(t)
	session := createTestSession(t, database)

	base := time.Now().Truncate(time.Millisecond)
	// Inserted out of timestamp order on purpose.
	logs := []*models.Log{
		{ID: "l2", SessionID: session.ID, Content: "second", Timestamp: base.Add(2 * time.Second), Service: "api", Level: "warn"},
		{ID: "l1", SessionID: session.ID, Content: "first", Timestamp: base, Level: "error"},
		{ID: "l3", SessionID: session.ID, Content: "third", Timestamp: base.Add(5 * time.Second)},
	}
	if err := database.SaveLogs(logs); err != nil {
		t.Fatalf("SaveLogs() error = %v", err)
	}

	got, err := database.GetSessionLogs(session.ID)
	if err != nil {
		t.Fatalf("GetSessionLogs() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetSessionLogs() returned %d logs, want 3", len(got))
	}
	for i, want := range []string{"l1", "l2", "l3"} {
		if got[i].ID != want {
			t.Errorf("log[%d].ID = %s, want %s (timestamp ascending)", i, got[i].ID, want)
		}
	}

	if got[0].Level != "error" || got[0].Service != "" {
		t.Errorf("optional fields did not round-trip: %+v", got[0])
	}
	if got[0].Grouped() {
		t.Error("freshly ingested log should be unassigned")
	}
	if !got[1].Timestamp.Equal(base.Add(2 * time.Second)) {
		t.Errorf("Timestamp = %v, want %v", got[1].Timestamp, base.Add(2*time.Second))
	}
}

func TestSaveLogs_AtomicOnFailure(t *testing.T) {
	database := newTestDB(t)
	session := createTestSession(t, database)

	if err := database.SaveLogs([]*models.Log{
		{ID: "dup", SessionID: session.ID, Content: "original", Timestamp: time.Now()},
	}); err != nil {
		t.Fatal(err)
	}

	// Batch with a duplicate id in the middle: nothing from it may land.
	err := database.SaveLogs([]*models.Log{
		{ID: "new-1", SessionID: session.ID, Content: "a", Timestamp: time.Now()},
		{ID: "dup", SessionID: session.ID, Content: "conflict", Timestamp: time.Now()},
		{ID: "new-2", SessionID: session.ID, Content: "b", Timestamp: time.Now()},
	})
	if err == nil {
		t.Fatal("SaveLogs() should fail on duplicate id")
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("SaveLogs() error = %v, want ErrWriteFailed", err)
	}

	got, err := database.GetSessionLogs(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "dup" || got[0].Content != "original" {
		t.Errorf("failed batch leaked rows: %+v", got)
	}
}

func TestSaveLogs_UnknownSessionRejected(t *testing.T) {
	database := newTestDB(t)

	err := database.SaveLogs([]*models.Log{
		{ID: "orphan", SessionID: "no-such-session", Content: "x", Timestamp: time.Now()},
	})
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("SaveLogs() with bad session = %v, want ErrWriteFailed (foreign key)", err)
	}
}

func TestSaveLogs_EmptyBatch(t *testing.T) {
	database := newTestDB(t)

	if err := database.SaveLogs(nil); err != nil {
		t.Errorf("SaveLogs(nil) error = %v, want nil", err)
	}
}
