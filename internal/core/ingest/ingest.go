// Package ingest turns collaborator output (fetched log records, grouping
// assignments) into persisted rows.
package ingest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/pkg/logrecords"
)

// Store is the slice of the record store ingestion needs. Both *db.DB and the
// session coordinator satisfy it.
type Store interface {
	GetSession(id string) (*models.Session, error)
	SaveLogs(logs []*models.Log) error
	CreateLogGroup(sessionID, name, description string) (*models.LogGroup, error)
	AssignLogsToGroup(groupID string, logIDs []string) error
}

// SaveRecords assigns identifiers to fetched records and bulk-saves them under
// the session. The whole batch lands atomically or not at all.
func SaveRecords(store Store, sessionID string, records []logrecords.Record) ([]*models.Log, error) {
	session, err := store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("no session with id %s", sessionID)
	}

	logs := make([]*models.Log, 0, len(records))
	for _, r := range records {
		logs = append(logs, &models.Log{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Content:   r.Content,
			Timestamp: r.Timestamp,
			Service:   r.Service,
			Level:     r.Level,
		})
	}

	if err := store.SaveLogs(logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GroupSpec is one grouping-collaborator tuple: a named cluster and the ids of
// the logs that belong in it.
type GroupSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	LogIDs      []string `json:"log_ids"`
}

// ApplyGroups realizes grouping assignments: one group per spec, then the
// bulk assignment of its logs. Each spec is applied independently; the first
// failure stops the run and reports which spec failed.
func ApplyGroups(store Store, sessionID string, specs []GroupSpec) ([]*models.LogGroup, error) {
	var groups []*models.LogGroup
	for _, spec := range specs {
		if spec.Name == "" {
			return groups, fmt.Errorf("group spec without a name")
		}
		group, err := store.CreateLogGroup(sessionID, spec.Name, spec.Description)
		if err != nil {
			return groups, fmt.Errorf("create group %q: %w", spec.Name, err)
		}
		if err := store.AssignLogsToGroup(group.ID, spec.LogIDs); err != nil {
			return groups, fmt.Errorf("assign logs to group %q: %w", spec.Name, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
