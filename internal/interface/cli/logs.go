package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	logsGroup string
	logsLimit int
)

var logsCmd = &cobra.Command{
	Use:   "logs <session-id>",
	Short: "Show a session's logs",
	Long: `Show the logs for a debugging session, oldest first.

Examples:
  logsleuth logs 0ccfddc4-00e7-443a-bb82-58ede5936619
  logsleuth logs 0ccfddc4-00e7-443a-bb82-58ede5936619 --group <group-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().StringVar(&logsGroup, "group", "", "Only show logs assigned to this group")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 100, "Maximum number of logs to display")
}

func runLogs(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	logs, err := mgr.SessionLogs(sessionID)
	if err != nil {
		return fmt.Errorf("failed to query logs: %w", err)
	}
	if logsGroup != "" {
		logs, err = mgr.GroupLogs(logsGroup)
		if err != nil {
			return fmt.Errorf("failed to query group logs: %w", err)
		}
	}

	if len(logs) > logsLimit {
		logs = logs[:logsLimit]
	}

	if len(logs) == 0 {
		fmt.Println("No logs found.")
		return nil
	}

	for _, l := range logs {
		group := "-"
		if l.GroupID != nil {
			group = shortID(*l.GroupID)
		}
		level := l.Level
		if level == "" {
			level = "-"
		}
		service := l.Service
		if service == "" {
			service = "-"
		}
		fmt.Printf("%s  %-5s  %-15s  %-8s  %s  %s\n",
			l.Timestamp.Format("2006-01-02 15:04:05.000"),
			level,
			truncate(service, 15),
			group,
			shortID(l.ID),
			l.Content,
		)
	}
	return nil
}
