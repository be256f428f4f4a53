package db

import (
	"database/sql"
	"time"
)

// Stats represents database statistics
type Stats struct {
	TotalSessions  int
	TotalLogs      int
	TotalGroups    int
	OldestSession  time.Time
	NewestActivity time.Time
}

// GetStats returns aggregate counts across the whole store.
func (db *DB) GetStats() (*Stats, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	stats := &Stats{}

	err := db.conn.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&stats.TotalSessions)
	if err != nil {
		return nil, err
	}

	err = db.conn.QueryRow("SELECT COUNT(*) FROM logs").Scan(&stats.TotalLogs)
	if err != nil {
		return nil, err
	}

	err = db.conn.QueryRow("SELECT COUNT(*) FROM log_groups").Scan(&stats.TotalGroups)
	if err != nil {
		return nil, err
	}

	if stats.TotalSessions > 0 {
		var minCreated, maxUpdated sql.NullInt64
		err = db.conn.QueryRow("SELECT MIN(created_at), MAX(updated_at) FROM sessions").Scan(&minCreated, &maxUpdated)
		if err != nil {
			return nil, err
		}
		if minCreated.Valid {
			stats.OldestSession = time.UnixMilli(minCreated.Int64)
		}
		if maxUpdated.Valid {
			stats.NewestActivity = time.UnixMilli(maxUpdated.Int64)
		}
	}

	return stats, nil
}
