package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store errors. Bulk operations wrap the failing row's error with
// ErrWriteFailed; single-record lookups signal "not found" with a nil record,
// not an error.
var (
	// ErrNotInitialized is returned by operations on a closed store.
	ErrNotInitialized = errors.New("db: store is closed")

	// ErrStorageUnavailable wraps failures to create or open the backing file.
	ErrStorageUnavailable = errors.New("db: storage unavailable")

	// ErrWriteFailed wraps a row write failure inside a bulk operation. The
	// enclosing transaction is rolled back before it is returned.
	ErrWriteFailed = errors.New("db: write failed")
)

// DB wraps a SQLite database holding debugging sessions, their logs, and log
// groups. All writes go through immediately; there is no in-memory mirror.
//
// The pool is capped at a single connection, so a transaction holds the
// connection for its whole lifetime and two overlapping bulk writes cannot
// interleave at the row level: each top-level call's transaction runs to
// completion before the next begins.
type DB struct {
	conn *sql.DB

	mu     sync.Mutex
	closed bool
}

// New creates a new database connection and initializes schema. The parent
// directory is created if absent; calling New on an existing database is safe.
func New(dbPath string) (*DB, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create database directory: %v", ErrStorageUnavailable, err)
	}

	// Open with WAL mode for concurrent reads
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	// SQLite only supports one writer; a single connection also serializes
	// top-level transactions against each other.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: initialize schema: %v", ErrStorageUnavailable, err)
	}

	return db, nil
}

// Close closes the database connection. Subsequent operations fail with
// ErrNotInitialized rather than silently reopening.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true
	return db.conn.Close()
}

// ready guards every operation against use after Close.
func (db *DB) ready() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrNotInitialized
	}
	return nil
}

// now returns the current time truncated to the millisecond resolution the
// store persists at.
func now() time.Time {
	return time.Now().Truncate(time.Millisecond)
}
