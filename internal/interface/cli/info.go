package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show database statistics",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	stats, err := mgr.Stats()
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Printf("Database: %s\n", dbPath)
	if fi, err := os.Stat(dbPath); err == nil {
		fmt.Printf("Size: %s\n", humanize.Bytes(uint64(fi.Size())))
	}
	fmt.Printf("Sessions: %d\n", stats.TotalSessions)
	fmt.Printf("Logs: %d\n", stats.TotalLogs)
	fmt.Printf("Log groups: %d\n", stats.TotalGroups)
	if !stats.NewestActivity.IsZero() {
		fmt.Printf("Last activity: %s\n", humanize.Time(stats.NewestActivity))
	}
	return nil
}
