package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List debugging sessions",
	Long: `List all debugging sessions, most recently updated first.

Examples:
  logsleuth list
  logsleuth list --limit 10`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	sessions, err := mgr.ListSessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) > listLimit {
		sessions = sessions[:listLimit]
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found. Run 'logsleuth new <name>' to create one.")
		return nil
	}

	fmt.Printf("Showing %d session(s)\n\n", len(sessions))

	for i, s := range sessions {
		fmt.Printf("[%d] %s\n", i+1, s.ID)
		fmt.Printf("    Name: %s\n", s.Name)
		fmt.Printf("    Provider: %s  Status: %s\n", s.CloudProvider, s.Status)
		fmt.Printf("    Range: %s to %s\n", formatTimestamp(s.StartTime), formatTimestamp(s.EndTime))
		fmt.Printf("    Updated: %s\n", relativeTime(s.UpdatedAt))
		fmt.Println()
	}
	return nil
}
