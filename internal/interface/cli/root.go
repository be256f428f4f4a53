package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/core/config"
	"github.com/logsleuth/logsleuth/internal/core/db"
	"github.com/logsleuth/logsleuth/internal/core/session"
)

var (
	dbPath      string
	versionInfo string
	cfg         *config.Config
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "logsleuth",
	Short: "Debugging-session log manager",
	Long: `logsleuth - organize cloud logs into debugging sessions

Pull fetched log records into named debugging sessions, cluster them into
log groups, and record root causes and fixes as you work an incident.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	cfg, _ = config.Load()

	defaultDB := cfg.DBPath
	if defaultDB == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "~"
		}
		defaultDB = filepath.Join(home, ".config", "logsleuth", "logsleuth.db")
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "Database path")
}

// openManager opens the store and wraps it in a coordinator. Commands go
// through the Manager rather than the store directly.
func openManager() (*session.Manager, error) {
	store, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return session.NewManager(store), nil
}
