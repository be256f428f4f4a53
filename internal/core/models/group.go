package models

// GroupStatus tracks the analysis lifecycle of a log group. The intended
// progression is new -> analyzing -> analyzed -> resolved, but the store
// accepts any value; legality is a caller concern.
type GroupStatus string

const (
	GroupNew       GroupStatus = "new"
	GroupAnalyzing GroupStatus = "analyzing"
	GroupAnalyzed  GroupStatus = "analyzed"
	GroupResolved  GroupStatus = "resolved"
)

// LogGroup is a named cluster of related Logs believed to represent one
// underlying issue. RootCause and SuggestedFix are filled in by an analysis
// collaborator after grouping.
type LogGroup struct {
	ID           string
	SessionID    string
	Name         string
	Description  string
	RootCause    string
	SuggestedFix string
	Status       GroupStatus
}
