package dolt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	"doltcli.dev/doltcli/testhelpers"
)

func TestListRemotes(t *testing.T) {
	t.Run("parses name and url pairs", func(t *testing.T) {
		output := "origin https://doltremoteapi.dolthub.com/org/repo\nbackup file:///backups/repo\n"
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: output})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		remotes, err := db.ListRemotes(context.Background())
		require.NoError(t, err)
		require.Equal(t, []dolt.Remote{
			{Name: "origin", URL: "https://doltremoteapi.dolthub.com/org/repo"},
			{Name: "backup", URL: "file:///backups/repo"},
		}, remotes)
	})

	t.Run("a one-field line is an error", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: "origin\n"})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		_, err := db.ListRemotes(context.Background())
		require.Error(t, err)
	})
}

func TestAddRemote(t *testing.T) {
	t.Run("requires a name and url", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())
		require.Error(t, db.AddRemote(context.Background(), "origin", ""))
		require.Error(t, db.AddRemote(context.Background(), "", "https://example.com/repo"))
	})
}

func TestPush(t *testing.T) {
	t.Run("requires a remote", func(t *testing.T) {
		db := dolt.NewWithExecutor(t.TempDir(), testhelpers.NewScriptedExecutor())
		require.Error(t, db.Push(context.Background(), dolt.PushOptions{}))
	})

	t.Run("sets the upstream when asked", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		err := db.Push(context.Background(), dolt.PushOptions{
			Remote:      "origin",
			Refspec:     "feature",
			SetUpstream: true,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"push", "--set-upstream", "origin", "feature"}, exec.LastCall().Args)
	})
}

func TestPull(t *testing.T) {
	t.Run("defaults the remote to origin", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		require.NoError(t, db.Pull(context.Background(), "", ""))
		require.Equal(t, []string{"pull", "origin"}, exec.LastCall().Args)
	})
}

func TestFetch(t *testing.T) {
	t.Run("passes refspecs after the remote", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		err := db.Fetch(context.Background(), dolt.FetchOptions{
			Remote:   "backup",
			Refspecs: []string{"main", "feature"},
			Force:    true,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"fetch", "--force", "backup", "main", "feature"}, exec.LastCall().Args)
	})
}
