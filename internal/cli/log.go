package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newLogCmd creates the log command
func newLogCmd(repoDir *string) *cobra.Command {
	var (
		number int
		commit string
	)

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show the commit history of the current branch",
		Aliases: []string{"l"},
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			history, err := db.Log(cmd.Context(), dolt.LogOptions{Number: number, Commit: commit})
			if err != nil {
				return err
			}

			splog := newSplog()
			for pair := history.Oldest(); pair != nil; pair = pair.Next() {
				c := pair.Value
				splog.Info("commit %s", c.Ref)
				if c.Merge {
					splog.Info("merge: %s", strings.Join(c.Parents, " "))
				}
				splog.Info("author: %s <%s>", c.Author, c.Email)
				splog.Info("date: %s", c.Timestamp)
				splog.Info("")
				splog.Info("    %s", c.Message)
				splog.Info("")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "limit the history to the given count")
	cmd.Flags().StringVar(&commit, "commit", "", "show only the given commit")

	return cmd
}
