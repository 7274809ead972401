package cli

import (
	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print doltcli and dolt versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog()
			splog.Info("doltcli %s (%s, built %s)", version, commit, date)

			doltVersion, err := dolt.Version(cmd.Context())
			if err != nil {
				splog.Warn("dolt binary not available: %v", err)
				return nil
			}
			splog.Info("dolt %s", doltVersion)
			return nil
		},
	}
}
