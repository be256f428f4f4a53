package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/models"
	"github.com/logsleuth/logsleuth/internal/core/timerange"
)

var (
	newProvider string
	newFrom     string
	newTo       string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a debugging session",
	Long: `Create a new debugging session covering a provider and time range.

Time expressions accept natural language as well as absolute dates.

Examples:
  logsleuth new "Outage-42" --provider aws --from "24 hours ago"
  logsleuth new "login errors" --provider gcp --from 2026-08-27 --to "2026-08-28 06:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newProvider, "provider", "", "Cloud provider: aws, azure, or gcp (default from config)")
	newCmd.Flags().StringVar(&newFrom, "from", "24 hours ago", "Start of the time range")
	newCmd.Flags().StringVar(&newTo, "to", "", "End of the time range (default: now)")
}

func runNew(cmd *cobra.Command, args []string) error {
	provider := models.CloudProvider(newProvider)
	if newProvider == "" {
		provider = cfg.DefaultProvider
	}
	if !provider.Valid() {
		return fmt.Errorf("unknown provider %q (want aws, azure, or gcp)", newProvider)
	}

	start, end, err := timerange.ParseRange(newFrom, newTo, time.Now())
	if err != nil {
		return err
	}

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	created, err := mgr.CreateSession(args[0], provider, start, end)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Printf("Created session %s\n", created.ID)
	fmt.Printf("    Name: %s\n", created.Name)
	fmt.Printf("    Provider: %s\n", created.CloudProvider)
	fmt.Printf("    Range: %s to %s\n", formatTimestamp(created.StartTime), formatTimestamp(created.EndTime))
	return nil
}
