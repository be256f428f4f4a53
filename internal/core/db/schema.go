package db

func (db *DB) initSchema() error {
	schema := `
	-- Sessions table: one row per debugging investigation
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		cloud_provider TEXT NOT NULL,
		start_time INTEGER NOT NULL,
		end_time INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'new'
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);

	-- Log groups table. Status values are intentionally unconstrained: the
	-- store accepts any status string, transition legality is a caller concern.
	CREATE TABLE IF NOT EXISTS log_groups (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		root_cause TEXT,
		suggested_fix TEXT,
		status TEXT NOT NULL DEFAULT 'new',
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_log_groups_session_id ON log_groups(session_id);

	-- Logs table. group_id is NULL until a grouping assignment.
	CREATE TABLE IF NOT EXISTS logs (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		log_content TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		service TEXT,
		log_level TEXT,
		group_id TEXT,
		FOREIGN KEY (session_id) REFERENCES sessions(id),
		FOREIGN KEY (group_id) REFERENCES log_groups(id)
	);

	CREATE INDEX IF NOT EXISTS idx_logs_session_id ON logs(session_id);
	CREATE INDEX IF NOT EXISTS idx_logs_group_id ON logs(group_id);
	CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(timestamp);
	`

	_, err := db.conn.Exec(schema)
	return err
}
