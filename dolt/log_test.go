package dolt_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	dolterrors "doltcli.dev/doltcli/errors"
	"doltcli.dev/doltcli/testhelpers"
)

func TestParseCommits(t *testing.T) {
	t.Run("folds single-parent rows into ordered commits", func(t *testing.T) {
		rows := []dolt.Row{
			{"commit_hash": "c2", "parent_hash": "c1", "committer": "ada", "email": "ada@x.dev", "date": "2024-03-02 10:00:00", "message": "second"},
			{"commit_hash": "c1", "parent_hash": "c0", "committer": "ada", "email": "ada@x.dev", "date": "2024-03-01 10:00:00", "message": "first"},
		}

		history, err := dolt.ParseCommits(rows)
		require.NoError(t, err)
		require.Equal(t, 2, history.Len())

		pair := history.Oldest()
		require.Equal(t, "c2", pair.Key)
		require.Equal(t, []string{"c1"}, pair.Value.Parents)
		require.False(t, pair.Value.Merge)
		require.Equal(t, "second", pair.Value.Message)

		pair = pair.Next()
		require.Equal(t, "c1", pair.Key)
		require.Equal(t, "first", pair.Value.Message)
	})

	t.Run("a repeated ref becomes a merge commit with two parents", func(t *testing.T) {
		rows := []dolt.Row{
			{"commit_hash": "m1", "parent_hash": "c2", "committer": "ada", "date": "2024-03-03 10:00:00", "message": "merge feature"},
			{"commit_hash": "m1", "parent_hash": "f1", "committer": "ada", "date": "2024-03-03 10:00:00", "message": "merge feature"},
			{"commit_hash": "c2", "parent_hash": "c1", "committer": "ada", "date": "2024-03-02 10:00:00", "message": "second"},
		}

		history, err := dolt.ParseCommits(rows)
		require.NoError(t, err)
		require.Equal(t, 2, history.Len())

		merge, ok := history.Get("m1")
		require.True(t, ok)
		require.True(t, merge.Merge)
		require.Equal(t, []string{"c2", "f1"}, merge.Parents)
	})

	t.Run("a third parent for one ref is an error", func(t *testing.T) {
		rows := []dolt.Row{
			{"commit_hash": "m1", "parent_hash": "a"},
			{"commit_hash": "m1", "parent_hash": "b"},
			{"commit_hash": "m1", "parent_hash": "c"},
		}

		_, err := dolt.ParseCommits(rows)
		require.ErrorIs(t, err, dolterrors.ErrTooManyParents)
	})
}

func TestLog(t *testing.T) {
	t.Run("pushes the bound and filter into the query", func(t *testing.T) {
		exec := testhelpers.NewScriptedExecutor(
			testhelpers.Response{Output: "commit_hash,parent_hash,committer,email,date,message\n"},
		)
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		_, err := db.Log(context.Background(), dolt.LogOptions{Number: 2, Commit: "abc123"})
		require.NoError(t, err)

		call := exec.LastCall()
		require.Equal(t, "sql", call.Args[0])
		require.NotEmpty(t, call.OutFile)

		query := call.Args[2]
		require.Contains(t, query, "dolt_log")
		require.Contains(t, query, "dolt_commit_ancestors")
		require.Contains(t, query, "where dc.commit_hash = 'abc123'")
		require.Contains(t, query, "limit 2")
		require.Contains(t, query, "order by date desc")
	})

	t.Run("reconstructs commits from the join rows", func(t *testing.T) {
		csv := strings.Join([]string{
			"commit_hash,parent_hash,committer,email,date,message",
			"c1,c0,ada,ada@x.dev,2024-03-01 10:00:00,first",
			"",
		}, "\n")
		exec := testhelpers.NewScriptedExecutor(testhelpers.Response{Output: csv})
		db := dolt.NewWithExecutor(t.TempDir(), exec)

		history, err := db.Log(context.Background(), dolt.LogOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, history.Len())

		commit, ok := history.Get("c1")
		require.True(t, ok)
		require.Equal(t, "ada", commit.Author)
		require.Equal(t, "ada@x.dev", commit.Email)
		require.Equal(t, "2024-03-01 10:00:00", commit.Timestamp)
	})
}
