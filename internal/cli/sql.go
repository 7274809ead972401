package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"doltcli.dev/doltcli/dolt"
)

// newSQLCmd creates the sql command
func newSQLCmd(repoDir *string) *cobra.Command {
	var (
		query  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Run a query and print its rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openRepo(repoDir)
			if err != nil {
				return err
			}

			var resultFormat dolt.ResultFormat
			switch format {
			case "csv":
				resultFormat = dolt.FormatCSV
			case "json":
				resultFormat = dolt.FormatJSON
			default:
				return fmt.Errorf("unknown result format %q, use csv or json", format)
			}

			rows, err := db.SQL(cmd.Context(), dolt.SQLOptions{Query: query, Format: resultFormat})
			if err != nil {
				return err
			}

			splog := newSplog()
			for _, row := range rows {
				cols := make([]string, 0, len(row))
				for col := range row {
					cols = append(cols, col)
				}
				sort.Strings(cols)

				parts := make([]string, 0, len(cols))
				for _, col := range cols {
					parts = append(parts, fmt.Sprintf("%s=%s", col, row[col]))
				}
				splog.Info("%s", strings.Join(parts, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "query to run")
	cmd.Flags().StringVar(&format, "format", "csv", "result format (csv or json)")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}
