package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

// CreateLogGroup persists a new group for the session with status "new".
// Groups are created independently of logs; logs are attached afterward with
// AssignLogsToGroup.
func (db *DB) CreateLogGroup(sessionID, name, description string) (*models.LogGroup, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	g := &models.LogGroup{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Name:        name,
		Description: description,
		Status:      models.GroupNew,
	}

	_, err := db.conn.Exec(`
		INSERT INTO log_groups (id, session_id, name, description, root_cause, suggested_fix, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		g.ID,
		g.SessionID,
		g.Name,
		nullable(g.Description),
		nullable(g.RootCause),
		nullable(g.SuggestedFix),
		string(g.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("insert log group: %w", err)
	}

	return g, nil
}

// GetLogGroup returns the group with the given id, or nil if none exists.
func (db *DB) GetLogGroup(id string) (*models.LogGroup, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	row := db.conn.QueryRow(`
		SELECT id, session_id, name, description, root_cause, suggested_fix, status
		FROM log_groups WHERE id = ?
	`, id)

	g, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get log group: %w", err)
	}
	return g, nil
}

// GetSessionLogGroups returns all groups belonging to a session, by name.
func (db *DB) GetSessionLogGroups(sessionID string) ([]*models.LogGroup, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT id, session_id, name, description, root_cause, suggested_fix, status
		FROM log_groups WHERE session_id = ?
		ORDER BY name ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list log groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.LogGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// UpdateLogGroup overwrites all mutable fields of the group identified by
// g.ID. Any status value is accepted; the store does not validate transitions.
func (db *DB) UpdateLogGroup(g *models.LogGroup) error {
	if err := db.ready(); err != nil {
		return err
	}

	res, err := db.conn.Exec(`
		UPDATE log_groups
		SET name = ?, description = ?, root_cause = ?, suggested_fix = ?, status = ?
		WHERE id = ?
	`,
		g.Name,
		nullable(g.Description),
		nullable(g.RootCause),
		nullable(g.SuggestedFix),
		string(g.Status),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("update log group: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update log group: no group with id %s", g.ID)
	}
	return nil
}

// AssignLogsToGroup points each named log at the group as a single atomic
// unit. A log already assigned to a different group is silently reassigned.
// An unknown log id fails the whole batch and rolls everything back.
func (db *DB) AssignLogsToGroup(groupID string, logIDs []string) error {
	if err := db.ready(); err != nil {
		return err
	}
	if len(logIDs) == 0 {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, logID := range logIDs {
		res, err := tx.Exec(`UPDATE logs SET group_id = ? WHERE id = ?`, groupID, logID)
		if err != nil {
			return fmt.Errorf("%w: assign log %s: %v", ErrWriteFailed, logID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: assign log %s: no such log", ErrWriteFailed, logID)
		}
	}

	return tx.Commit()
}

func scanGroup(row rowScanner) (*models.LogGroup, error) {
	var g models.LogGroup
	var description, rootCause, suggestedFix sql.NullString
	var status string
	err := row.Scan(&g.ID, &g.SessionID, &g.Name, &description, &rootCause, &suggestedFix, &status)
	if err != nil {
		return nil, err
	}
	g.Description = description.String
	g.RootCause = rootCause.String
	g.SuggestedFix = suggestedFix.String
	g.Status = models.GroupStatus(status)
	return &g, nil
}
