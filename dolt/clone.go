package dolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CloneOptions parameterizes a clone of a remote database.
type CloneOptions struct {
	// NewDir is the directory to clone into; inferred from the remote URL
	// when empty.
	NewDir string
	// Remote names the remote in the new repository.
	Remote string
	// Branch selects the branch to clone.
	Branch string
}

// Clone clones a remote database into a new directory and returns a
// handle on the resulting repository.
func Clone(ctx context.Context, remoteURL string, opts CloneOptions) (*Dolt, error) {
	args := []string{"clone", remoteURL}
	if opts.Remote != "" {
		args = append(args, "--remote", opts.Remote)
	}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}

	inferFrom := remoteURL
	if opts.NewDir != "" {
		inferFrom = ""
	}
	cloneDir, err := resolveCloneDir(opts.NewDir, inferFrom)
	if err != nil {
		return nil, err
	}
	args = append(args, cloneDir)

	runner := NewCommandRunner("")
	if _, err := runner.Execute(ctx, args, ""); err != nil {
		return nil, err
	}
	return New(cloneDir)
}

// resolveCloneDir picks the directory a clone lands in: the explicit
// directory when given, otherwise the last segment of the remote URL under
// the current directory. An existing inferred directory is an error rather
// than an overwrite.
func resolveCloneDir(newDir, remoteURL string) (string, error) {
	if newDir == "" && remoteURL == "" {
		return "", fmt.Errorf("provide either a target directory or a remote url")
	}
	if remoteURL != "" {
		segments := strings.Split(remoteURL, "/")
		base := newDir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			base = wd
		}
		inferred := filepath.Join(base, segments[len(segments)-1])
		if _, err := os.Stat(inferred); err == nil {
			return "", fmt.Errorf("path already exists, cannot clone into %s", inferred)
		}
		return inferred, nil
	}
	return newDir, nil
}

// ReadTables materializes the given tables (or all tables) from a remote
// database at a commit into a new local repository.
func ReadTables(ctx context.Context, remoteURL, committish string, tables []string, newDir string) (*Dolt, error) {
	inferFrom := remoteURL
	if newDir != "" {
		inferFrom = ""
	}
	cloneDir, err := resolveCloneDir(newDir, inferFrom)
	if err != nil {
		return nil, err
	}

	args := []string{"read-tables", "--dir", cloneDir, remoteURL, committish}
	args = append(args, tables...)

	runner := NewCommandRunner(newDir)
	if _, err := runner.Execute(ctx, args, ""); err != nil {
		return nil, err
	}
	return New(cloneDir)
}
