package dolt_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"doltcli.dev/doltcli/dolt"
	dolterrors "doltcli.dev/doltcli/errors"
)

// withDoltPath swaps the process-wide executable for the duration of a test.
func withDoltPath(t *testing.T, path string) {
	t.Helper()
	previous := dolt.DoltPath()
	dolt.SetDoltPath(path)
	t.Cleanup(func() { dolt.SetDoltPath(previous) })
}

func TestCommandRunner(t *testing.T) {
	t.Run("captures standard output", func(t *testing.T) {
		withDoltPath(t, "echo")
		runner := dolt.NewCommandRunner("")

		out, err := runner.Execute(context.Background(), []string{"hello", "world"}, "")
		require.NoError(t, err)
		require.Equal(t, "hello world\n", out)
	})

	t.Run("redirects standard output to a file when asked", func(t *testing.T) {
		withDoltPath(t, "echo")
		runner := dolt.NewCommandRunner("")

		outFile := filepath.Join(t.TempDir(), "out.txt")
		out, err := runner.Execute(context.Background(), []string{"redirected"}, outFile)
		require.NoError(t, err)
		require.Empty(t, out)

		content, err := os.ReadFile(outFile)
		require.NoError(t, err)
		require.Equal(t, "redirected\n", string(content))
	})

	t.Run("a failed command removes its partial redirect file", func(t *testing.T) {
		withDoltPath(t, "sh")
		runner := dolt.NewCommandRunner("")

		outFile := filepath.Join(t.TempDir(), "out.txt")
		_, err := runner.Execute(context.Background(), []string{"-c", "echo partial; exit 1"}, outFile)
		require.ErrorIs(t, err, dolterrors.ErrCommandFailed)

		_, statErr := os.Stat(outFile)
		require.True(t, os.IsNotExist(statErr), "redirect file should be removed on failure")
	})

	t.Run("a non-zero exit carries the code and captured stderr", func(t *testing.T) {
		withDoltPath(t, "sh")
		runner := dolt.NewCommandRunner("")

		_, err := runner.Execute(context.Background(), []string{"-c", "echo boom >&2; exit 3"}, "")
		require.ErrorIs(t, err, dolterrors.ErrCommandFailed)

		var cmdErr *dolterrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, 3, cmdErr.ExitCode)
		require.Contains(t, cmdErr.Stderr, "boom")
	})

	t.Run("a missing binary carries exit code -1", func(t *testing.T) {
		withDoltPath(t, filepath.Join(t.TempDir(), "missing-binary"))
		runner := dolt.NewCommandRunner("")

		_, err := runner.Execute(context.Background(), []string{"version"}, "")
		require.ErrorIs(t, err, dolterrors.ErrCommandFailed)

		var cmdErr *dolterrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, -1, cmdErr.ExitCode)
	})

	t.Run("runs in the configured working directory", func(t *testing.T) {
		withDoltPath(t, "pwd")
		dir := t.TempDir()
		runner := dolt.NewCommandRunner(dir)

		out, err := runner.Execute(context.Background(), nil, "")
		require.NoError(t, err)
		require.Contains(t, out, filepath.Base(dir))
	})
}
