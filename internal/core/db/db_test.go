package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

func writeFile(t *testing.T, path string) error {
	t.Helper()
	return os.WriteFile(path, []byte("x"), 0644)
}

// newTestDB opens a store backed by a temp file and closes it with the test.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "logsleuth.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestNew(t *testing.T) {
	database := newTestDB(t)

	// Verify schema initialized
	var count int
	err := database.conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('sessions', 'logs', 'log_groups')").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 tables, got %d", count)
	}
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "logsleuth.db")
	database, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = database.Close() }()
}

func TestNew_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logsleuth.db")

	first, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	session, err := first.CreateSession("Outage-42", models.ProviderAWS, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening the same file must not disturb existing data.
	second, err := New(path)
	if err != nil {
		t.Fatalf("New() on existing database error = %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got == nil || got.Name != "Outage-42" {
		t.Errorf("GetSession() = %+v, want session Outage-42", got)
	}
}

func TestNew_ForeignKeys(t *testing.T) {
	database := newTestDB(t)

	var fkEnabled int
	err := database.conn.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	if err != nil {
		t.Fatalf("Failed to query foreign keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Errorf("Expected foreign keys enabled (1), got %d", fkEnabled)
	}
}

func TestNew_WALMode(t *testing.T) {
	database := newTestDB(t)

	var journalMode string
	err := database.conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	if err != nil {
		t.Fatalf("Failed to query journal mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("Expected WAL mode, got %s", journalMode)
	}
}

func TestNew_BadPath(t *testing.T) {
	// A path whose parent is a regular file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := writeFile(t, blocker); err != nil {
		t.Fatal(err)
	}

	_, err := New(filepath.Join(blocker, "logsleuth.db"))
	if err == nil {
		t.Fatal("New() should fail when the parent path is a file")
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("New() error = %v, want ErrStorageUnavailable", err)
	}
}

func TestClosedStore(t *testing.T) {
	database := newTestDB(t)
	if err := database.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := database.CreateSession("x", models.ProviderAWS, time.Now(), time.Now()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("CreateSession after Close: error = %v, want ErrNotInitialized", err)
	}
	if _, err := database.GetSession("x"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetSession after Close: error = %v, want ErrNotInitialized", err)
	}
	if err := database.SaveLogs([]*models.Log{{ID: "l", SessionID: "s"}}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SaveLogs after Close: error = %v, want ErrNotInitialized", err)
	}

	// Closing twice is fine.
	if err := database.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
