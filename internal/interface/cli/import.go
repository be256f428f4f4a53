package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/ingest"
	"github.com/logsleuth/logsleuth/pkg/logrecords"
)

var importSession string

var importCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Import fetched log records into a session",
	Long: `Import a JSONL file of fetched log records into a session.

Each line is a JSON object with "content", "timestamp" (epoch milliseconds),
and optional "service" and "level" fields — the handoff format a cloud log
fetcher produces. The whole file is saved as one atomic batch.

Examples:
  logsleuth import fetched.jsonl --session 0ccfddc4-00e7-443a-bb82-58ede5936619`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importSession, "session", "", "Target session id (required)")
	_ = importCmd.MarkFlagRequired("session")
}

func runImport(cmd *cobra.Command, args []string) error {
	records, err := logrecords.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No records in file, nothing to import.")
		return nil
	}

	mgr, err := openManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	saved, err := ingest.SaveRecords(mgr, importSession, records)
	if err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}

	fmt.Printf("Imported %d log(s) into session %s\n", len(saved), importSession)
	return nil
}
