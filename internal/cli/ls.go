package cli

import (
	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newLsCmd creates the ls command
func newLsCmd(repoDir *string) *cobra.Command {
	var (
		system bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the tables in the working set",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			tables, err := db.ListTables(cmd.Context(), dolt.TablesOptions{System: system, All: all})
			if err != nil {
				return err
			}

			splog := newSplog()
			if len(tables) == 0 {
				splog.Info("no tables in working set")
				return nil
			}
			for _, table := range tables {
				if table.System {
					splog.Info("%s (system)", table.Name)
					continue
				}
				rows := 0
				if table.RowCount != nil {
					rows = *table.RowCount
				}
				splog.Info("%s %s %d rows", table.Name, table.Root, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "include system tables")
	cmd.Flags().BoolVar(&all, "all", false, "include all tables")

	return cmd
}
