package cli

import (
	"os"

	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newInitCmd creates the init command
func newInitCmd(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := *repoDir
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			db, err := dolt.Init(cmd.Context(), dir)
			if err != nil {
				return err
			}

			newSplog().Info("initialized repository in %s", db.RepoDir())
			return nil
		},
	}
}
