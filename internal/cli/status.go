package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the working set",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			status, err := db.Status(cmd.Context())
			if err != nil {
				return err
			}

			splog := newSplog()
			if status.IsClean {
				splog.Info("working set clean")
				return nil
			}

			printTableChanges(splog, "new table", status.AddedTables)
			printTableChanges(splog, "modified", status.ModifiedTables)
			return nil
		},
	}
}

func printTableChanges(splog *output.Splog, label string, tables map[string]bool) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		state := "unstaged"
		if tables[name] {
			state = "staged"
		}
		splog.Info("%s: %s (%s)", label, name, state)
	}
}
