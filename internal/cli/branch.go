package cli

import (
	"github.com/spf13/cobra"
)

// newBranchCmd creates the branch command
func newBranchCmd(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "List branches, marking the active one",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			active, branches, err := db.ListBranches(cmd.Context())
			if err != nil {
				return err
			}

			splog := newSplog()
			for _, branch := range branches {
				marker := " "
				if branch.Name == active.Name {
					marker = "*"
				}
				splog.Info("%s %s %s", marker, branch.Name, branch.Hash)
			}
			return nil
		},
	}
}
