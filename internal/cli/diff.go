package cli

import (
	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newDiffCmd creates the diff command
func newDiffCmd(repoDir *string) *cobra.Command {
	var (
		commit      string
		otherCommit string
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "diff [tables...]",
		Short: "Show changes between commits or in the working set",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			out, err := db.Diff(cmd.Context(), dolt.DiffOptions{
				Commit:      commit,
				OtherCommit: otherCommit,
				Tables:      args,
				Summary:     summary,
			})
			if err != nil {
				return err
			}

			newSplog().Page(out + "\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&commit, "commit", "", "commit to diff against")
	cmd.Flags().StringVar(&otherCommit, "other-commit", "", "second commit of the diff")
	cmd.Flags().BoolVar(&summary, "summary", false, "summarize the data changes")

	return cmd
}
