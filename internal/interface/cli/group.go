package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/ingest"
	"github.com/logsleuth/logsleuth/internal/core/models"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage log groups",
	Long:  "Create log groups, assign logs to them, and record analysis results.",
}

var (
	groupCreateSession     string
	groupCreateDescription string
	groupListSession       string
	groupAnnotateRootCause string
	groupAnnotateFix       string
	groupAnnotateStatus    string
	groupApplySession      string
)

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a log group in a session",
	Long: `Create an empty log group; attach logs afterward with 'group assign'.

Examples:
  logsleuth group create "Service A errors" --session <session-id>
  logsleuth group create "timeouts" --session <session-id> --description "upstream latency"`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupCreate,
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a session's log groups",
	RunE:  runGroupList,
}

var groupAssignCmd = &cobra.Command{
	Use:   "assign <group-id> <log-id>...",
	Short: "Assign logs to a group",
	Long: `Assign one or more logs to a group as a single atomic batch.

A log already in another group is moved; it belongs to at most one group.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGroupAssign,
}

var groupApplyCmd = &cobra.Command{
	Use:   "apply <specs.json>",
	Short: "Apply grouping assignments from a file",
	Long: `Apply a grouping collaborator's output: a JSON array of
{"name", "description", "log_ids"} objects. Each entry creates a group and
assigns its logs.

Examples:
  logsleuth group apply groups.json --session <session-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupApply,
}

var groupAnnotateCmd = &cobra.Command{
	Use:   "annotate <group-id>",
	Short: "Record analysis results on a group",
	Long: `Record an analysis collaborator's root cause and suggested fix.

Examples:
  logsleuth group annotate <group-id> --root-cause "pool exhausted" --fix "raise max_connections"
  logsleuth group annotate <group-id> --status resolved`,
	Args: cobra.ExactArgs(1),
	RunE: runGroupAnnotate,
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupCreateCmd, groupListCmd, groupAssignCmd, groupApplyCmd, groupAnnotateCmd)

	groupCreateCmd.Flags().StringVar(&groupCreateSession, "session", "", "Owning session id (required)")
	groupCreateCmd.Flags().StringVar(&groupCreateDescription, "description", "", "Optional description")
	_ = groupCreateCmd.MarkFlagRequired("session")

	groupListCmd.Flags().StringVar(&groupListSession, "session", "", "Session id (required)")
	_ = groupListCmd.MarkFlagRequired("session")

	groupApplyCmd.Flags().StringVar(&groupApplySession, "session", "", "Owning session id (required)")
	_ = groupApplyCmd.MarkFlagRequired("session")

	groupAnnotateCmd.Flags().StringVar(&groupAnnotateRootCause, "root-cause", "", "Root cause text")
	groupAnnotateCmd.Flags().StringVar(&groupAnnotateFix, "fix", "", "Suggested fix text")
	groupAnnotateCmd.Flags().StringVar(&groupAnnotateStatus, "status", "", "New status: new, analyzing, analyzed, or resolved")
}

func runGroupCreate(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	group, err := mgr.CreateLogGroup(groupCreateSession, args[0], groupCreateDescription)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	fmt.Printf("Created group %s (%s)\n", group.ID, group.Name)
	return nil
}

func runGroupList(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	groups, err := mgr.SessionLogGroups(groupListSession)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("No log groups in this session.")
		return nil
	}

	for _, g := range groups {
		logs, err := mgr.GroupLogs(g.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %-10s  %3d logs  %s\n", g.ID, g.Status, len(logs), g.Name)
		if g.Description != "" {
			fmt.Printf("    %s\n", g.Description)
		}
		if g.RootCause != "" {
			fmt.Printf("    Root cause: %s\n", g.RootCause)
		}
		if g.SuggestedFix != "" {
			fmt.Printf("    Suggested fix: %s\n", g.SuggestedFix)
		}
	}
	return nil
}

func runGroupAssign(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	groupID, logIDs := args[0], args[1:]
	if err := mgr.AssignLogsToGroup(groupID, logIDs); err != nil {
		return fmt.Errorf("failed to assign logs: %w", err)
	}
	fmt.Printf("Assigned %d log(s) to group %s\n", len(logIDs), groupID)
	return nil
}

func runGroupApply(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read specs: %w", err)
	}
	var specs []ingest.GroupSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return fmt.Errorf("failed to parse specs: %w", err)
	}

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	groups, err := ingest.ApplyGroups(mgr, groupApplySession, specs)
	if err != nil {
		return fmt.Errorf("failed to apply groups: %w", err)
	}
	fmt.Printf("Applied %d group(s)\n", len(groups))
	return nil
}

func runGroupAnnotate(cmd *cobra.Command, args []string) error {
	if groupAnnotateRootCause == "" && groupAnnotateFix == "" && groupAnnotateStatus == "" {
		return fmt.Errorf("nothing to record: pass --root-cause, --fix, or --status")
	}

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	group, err := mgr.LogGroup(args[0])
	if err != nil {
		return fmt.Errorf("failed to look up group: %w", err)
	}
	if group == nil {
		return fmt.Errorf("no group with id %s", args[0])
	}

	if groupAnnotateRootCause != "" {
		group.RootCause = groupAnnotateRootCause
	}
	if groupAnnotateFix != "" {
		group.SuggestedFix = groupAnnotateFix
	}
	switch {
	case groupAnnotateStatus != "":
		group.Status = models.GroupStatus(groupAnnotateStatus)
	case groupAnnotateRootCause != "" || groupAnnotateFix != "":
		group.Status = models.GroupAnalyzed
	}

	if err := mgr.UpdateLogGroup(group); err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	fmt.Printf("Updated group %s (status: %s)\n", group.ID, group.Status)
	return nil
}
