package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/ingest"
)

var (
	generateSession string
	generateCount   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate mock logs into a session",
	Long: `Generate sample log records spread across a session's time range.

Useful for trying the tool out without a cloud log fetcher attached.

Examples:
  logsleuth generate --session 0ccfddc4-00e7-443a-bb82-58ede5936619 --count 200`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateSession, "session", "", "Target session id (required)")
	generateCmd.Flags().IntVar(&generateCount, "count", 100, "Number of logs to generate")
	_ = generateCmd.MarkFlagRequired("session")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	target, err := mgr.GetSession(generateSession)
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if target == nil {
		return fmt.Errorf("no session with id %s", generateSession)
	}

	records := ingest.GenerateRecords(target, generateCount)
	saved, err := ingest.SaveRecords(mgr, target.ID, records)
	if err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}

	fmt.Printf("Generated %d log(s) into session %q\n", len(saved), target.Name)
	return nil
}
