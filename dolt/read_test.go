package dolt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	"doltcli.dev/doltcli/testhelpers"
)

func TestReadRows(t *testing.T) {
	t.Run("reads a whole table", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "id,name\n1,ada\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		rows, err := db.ReadRows(context.Background(), "people", "")
		require.NoError(t, err)
		require.Equal(t, []dolt.Row{{"id": "1", "name": "ada"}}, rows)
		require.Equal(t, "SELECT * FROM `people`", exec.LastCall().Args[2])
	})

	t.Run("a committish pins the read with as of", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "id\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		_, err := db.ReadRows(context.Background(), "people", "HEAD~1")
		require.NoError(t, err)
		require.Equal(t, "SELECT * FROM `people` AS OF \"HEAD~1\"", exec.LastCall().Args[2])
	})
}

func TestReadColumns(t *testing.T) {
	t.Run("pivots rows into columns", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "id,name\n1,ada\n2,grace\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		columns, err := db.ReadColumns(context.Background(), "people", "")
		require.NoError(t, err)
		require.Equal(t, map[string][]string{
			"id":   {"1", "2"},
			"name": {"ada", "grace"},
		}, columns)
	})
}
