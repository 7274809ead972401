package dolt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	"doltcli.dev/doltcli/testhelpers"
)

func TestImportSchema(t *testing.T) {
	t.Run("requires exactly one of create, update, replace", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())

		err := db.ImportSchema(context.Background(), "users", "users.csv", dolt.SchemaImportOptions{})
		require.Error(t, err)
	})

	t.Run("builds the full argument vector", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		err := db.ImportSchema(context.Background(), "users", "users.csv", dolt.SchemaImportOptions{
			Create:         true,
			DryRun:         true,
			PrimaryKey:     []string{"id"},
			FloatThreshold: 0.5,
		})
		require.NoError(t, err)
		require.Equal(t, []string{
			"schema", "import", "--create", "--dry-run",
			"--pks", "id",
			"--float-threshold", "0.5",
			"users", "users.csv",
		}, exec.LastCall().Args)
	})
}

func TestExportSchema(t *testing.T) {
	t.Run("without a filename the schema is returned", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "CREATE TABLE users (...)"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		out, err := db.ExportSchema(context.Background(), "users", "")
		require.NoError(t, err)
		require.Equal(t, "CREATE TABLE users (...)", out)
		require.Equal(t, []string{"schema", "export", "users"}, exec.LastCall().Args)
	})

	t.Run("with a filename the path is returned", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		out, err := db.ExportSchema(context.Background(), "users", "schema.sql")
		require.NoError(t, err)
		require.Equal(t, "schema.sql", out)
		require.Equal(t, []string{"schema", "export", "users", "--filename", "schema.sql"}, exec.LastCall().Args)
	})
}

func TestShowSchema(t *testing.T) {
	t.Run("the commit precedes the tables", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "schema"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		_, err := db.ShowSchema(context.Background(), "abc123", "users", "orders")
		require.NoError(t, err)
		require.Equal(t, []string{"schema", "show", "abc123", "users", "orders"}, exec.LastCall().Args)
	})
}
