// Package cli implements the doltcli command tree. Every command is thin
// glue over the dolt package: it resolves the repository, calls one
// operation, and prints the typed result.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
	"doltcli.dev/doltcli/internal/config"
	"doltcli.dev/doltcli/internal/output"
)

// logFile is the rotated log file from the loaded configuration, set before
// any command runs.
var logFile string

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var repoDir string

	rootCmd := &cobra.Command{
		Use:   "doltcli",
		Short: "Doltcli is a typed command line front end for dolt repositories",
		Long: `Doltcli wraps the dolt command line tool, turning its output into
typed results: status, branches, commit history, and table listings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.DoltPath != "" {
				dolt.SetDoltPath(cfg.DoltPath)
			}
			logFile = cfg.LogFile
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", "", "repository directory (defaults to the current directory)")

	rootCmd.AddCommand(newInitCmd(&repoDir))
	rootCmd.AddCommand(newStatusCmd(&repoDir))
	rootCmd.AddCommand(newLogCmd(&repoDir))
	rootCmd.AddCommand(newBranchCmd(&repoDir))
	rootCmd.AddCommand(newLsCmd(&repoDir))
	rootCmd.AddCommand(newSQLCmd(&repoDir))
	rootCmd.AddCommand(newDiffCmd(&repoDir))
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// newSplog creates console output, with file logging when configured.
func newSplog() *output.Splog {
	if logFile != "" {
		if splog, err := output.NewSplogWithConfig(logFile); err == nil {
			return splog
		}
	}
	return output.NewSplog()
}

// openRepo resolves the repository directory flag and opens a handle.
func openRepo(repoDir *string) (*dolt.Dolt, error) {
	dir := *repoDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	return dolt.New(dir)
}
