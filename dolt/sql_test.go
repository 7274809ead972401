package dolt_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	"doltcli.dev/doltcli/testhelpers"
)

func TestSQLOptions(t *testing.T) {
	t.Run("listing saved queries excludes every other mode", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())

		_, err := db.SQL(context.Background(), dolt.SQLOptions{ListSaved: true, Query: "select 1"})
		require.Error(t, err)
	})

	t.Run("executing a saved query excludes every other mode", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())

		_, err := db.SQL(context.Background(), dolt.SQLOptions{ExecuteSaved: "daily", Batch: true})
		require.Error(t, err)
	})

	t.Run("a result format requires a query", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())

		_, err := db.SQL(context.Background(), dolt.SQLOptions{Format: dolt.FormatCSV})
		require.Error(t, err)
	})
}

func TestSQL(t *testing.T) {
	t.Run("without a structured request the command runs for side effects", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		rows, err := db.SQL(context.Background(), dolt.SQLOptions{Query: "insert into t values (1)"})
		require.NoError(t, err)
		require.Nil(t, rows)

		call := exec.LastCall()
		require.Equal(t, []string{"sql", "--query", "insert into t values (1)"}, call.Args)
		require.Empty(t, call.OutFile)
	})

	t.Run("csv results project into string-valued rows", func(t *testing.T) {
		csv := "id,name\n1,ada\n2,grace\n"
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: csv})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		rows, err := db.SQL(context.Background(), dolt.SQLOptions{
			Query:  "select * from people",
			Format: dolt.FormatCSV,
		})
		require.NoError(t, err)
		require.Equal(t, []dolt.Row{
			{"id": "1", "name": "ada"},
			{"id": "2", "name": "grace"},
		}, rows)

		call := exec.LastCall()
		require.Equal(t, "csv", call.Args[len(call.Args)-1])
		require.NotEmpty(t, call.OutFile)
		_, statErr := os.Stat(filepath.Dir(call.OutFile))
		require.True(t, os.IsNotExist(statErr), "temporary result directory should be removed")
	})

	t.Run("json results are stringified without type inference", func(t *testing.T) {
		doc := `{"rows":[{"id":1,"name":"ada","active":true,"note":null}]}`
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: doc})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		rows, err := db.SQL(context.Background(), dolt.SQLOptions{
			Query:  "select * from people",
			Format: dolt.FormatJSON,
		})
		require.NoError(t, err)
		require.Equal(t, []dolt.Row{
			{"id": "1", "name": "ada", "active": "true", "note": ""},
		}, rows)
	})

	t.Run("a result file redirects raw csv to the caller's path", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "id\n1\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		target := filepath.Join(t.TempDir(), "result.csv")
		rows, err := db.SQL(context.Background(), dolt.SQLOptions{
			Query:      "select * from t",
			ResultFile: target,
		})
		require.NoError(t, err)
		require.Nil(t, rows)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, "id\n1\n", string(content))
	})

	t.Run("saving a query passes the name and message through", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		_, err := db.SQL(context.Background(), dolt.SQLOptions{
			Query:   "select 1",
			Save:    "daily",
			Message: "daily check",
		})
		require.NoError(t, err)
		require.Equal(t, []string{
			"sql", "--save", "daily", "--message", "daily check", "--query", "select 1",
		}, exec.LastCall().Args)
	})
}

func TestSQLParse(t *testing.T) {
	t.Run("hands the raw output file to the caller's parser", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "id\n1\n2\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		res, err := db.SQLParse(context.Background(), "select id from t", func(path string) (any, error) {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return len(strings.Split(strings.TrimSpace(string(content)), "\n")), nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, res)
	})

	t.Run("a parser requires a query", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())

		_, err := db.SQLParse(context.Background(), "", func(string) (any, error) { return nil, nil })
		require.Error(t, err)
	})
}
