package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and everything it owns",
	Long: `Delete a debugging session along with all of its logs and log groups.

Examples:
  logsleuth delete 0ccfddc4-00e7-443a-bb82-58ede5936619
  logsleuth delete 0ccfddc4-00e7-443a-bb82-58ede5936619 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	target, err := mgr.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if target == nil {
		return fmt.Errorf("no session with id %s", sessionID)
	}

	if !deleteForce {
		logs, err := mgr.SessionLogs(sessionID)
		if err != nil {
			return err
		}
		groups, err := mgr.SessionLogGroups(sessionID)
		if err != nil {
			return err
		}
		fmt.Printf("Delete session %q with %d logs and %d groups? [y/N] ", target.Name, len(logs), len(groups))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := mgr.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Printf("Deleted session %s\n", sessionID)
	return nil
}
