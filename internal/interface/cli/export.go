package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/report"
)

var (
	exportOutput string
	exportCopy   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session report to markdown",
	Long: `Render a markdown report of a session: its groups, recorded root causes
and fixes, and log counts.

By default exports to the current directory as session-<id>.md. A custom
mustache template at ~/.config/logsleuth/report_template.txt overrides the
built-in layout.

Examples:
  logsleuth export 0ccfddc4-00e7-443a-bb82-58ede5936619
  logsleuth export 0ccfddc4-00e7-443a-bb82-58ede5936619 --output ~/outage-42.md
  logsleuth export 0ccfddc4-00e7-443a-bb82-58ede5936619 --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: session-<id>.md in current directory)")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy the report to the clipboard instead of writing a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	store, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	out, err := report.RenderSession(store, sessionID, cfg.ReportTemplate)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if exportCopy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy report: %w", err)
		}
		fmt.Println("Copied report to clipboard")
		return nil
	}

	outputPath := exportOutput
	if outputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		outputPath = filepath.Join(cwd, fmt.Sprintf("session-%s.md", shortID(sessionID)))
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Exported session report to: %s\n", outputPath)
	return nil
}
