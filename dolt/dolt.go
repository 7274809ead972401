package dolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dolterrors "doltcli.dev/doltcli/errors"
)

// repoDirName is the reserved subdirectory whose presence identifies a
// valid repository root.
const repoDirName = ".dolt"

// Dolt is a handle on a single repository. All operations spawn one dolt
// process, block until it exits, and never retry. Concurrent writers
// against the same repository directory are not coordinated by this layer;
// the tool's own locking is the only safety net.
type Dolt struct {
	repoDir string
	exec    Executor
}

// New opens an existing repository. The directory must contain the
// reserved .dolt subdirectory, otherwise construction fails.
func New(repoDir string) (*Dolt, error) {
	if _, err := os.Stat(filepath.Join(repoDir, repoDirName)); err != nil {
		return nil, fmt.Errorf("%w: %s", dolterrors.ErrNotARepository, repoDir)
	}
	return &Dolt{repoDir: repoDir, exec: NewCommandRunner(repoDir)}, nil
}

// NewWithExecutor opens a repository handle backed by a caller-supplied
// Executor. The repository directory is not validated; this is the seam
// used to substitute a fake executor in tests.
func NewWithExecutor(repoDir string, exec Executor) *Dolt {
	return &Dolt{repoDir: repoDir, exec: exec}
}

// Init creates a new repository in repoDir, creating the directory if
// needed, and returns a handle on it.
func Init(ctx context.Context, repoDir string) (*Dolt, error) {
	if repoDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		repoDir = wd
	}

	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create repository directory: %w", err)
	}

	runner := NewCommandRunner(repoDir)
	if _, err := runner.Execute(ctx, []string{"init"}, ""); err != nil {
		return nil, err
	}
	return New(repoDir)
}

// Version returns the version string of the dolt binary.
func Version(ctx context.Context) (string, error) {
	runner := NewCommandRunner("")
	out, err := runner.Execute(ctx, []string{"version"}, "")
	if err != nil {
		return "", err
	}
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return "", fmt.Errorf("unexpected version output: %q", out)
	}
	return fields[2], nil
}

// RepoDir returns the repository directory this handle operates on.
func (d *Dolt) RepoDir() string {
	return d.repoDir
}

// RepoName returns the database name dolt derives from the repository
// directory (base name with dashes replaced by underscores).
func (d *Dolt) RepoName() string {
	base := filepath.Base(filepath.Clean(d.repoDir))
	return strings.ReplaceAll(base, "-", "_")
}

// Exec runs a dolt command in the repository directory and returns its
// output with surrounding whitespace trimmed.
func (d *Dolt) Exec(ctx context.Context, args ...string) (string, error) {
	out, err := d.exec.Execute(ctx, args, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// execRaw runs a dolt command and returns its output untrimmed, for
// parsers that classify output by exact line layout.
func (d *Dolt) execRaw(ctx context.Context, args ...string) (string, error) {
	return d.exec.Execute(ctx, args, "")
}

// ExecToFile runs a dolt command with standard output redirected to
// outFile and returns the path.
func (d *Dolt) ExecToFile(ctx context.Context, outFile string, args ...string) (string, error) {
	if _, err := d.exec.Execute(ctx, args, outFile); err != nil {
		return "", err
	}
	return outFile, nil
}

// ExecLenient runs a dolt command and, if the command itself exits
// non-zero, returns the failure's string form as if it were output. This
// is for diagnostic paths that want to display rather than abort. Spawn
// failures (exit code -1) still propagate: an absent binary is fatal.
func (d *Dolt) ExecLenient(ctx context.Context, args ...string) (string, error) {
	out, err := d.exec.Execute(ctx, args, "")
	if err != nil {
		var cmdErr *dolterrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode >= 0 {
			return cmdErr.Error(), nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Head returns the commit hash of HEAD.
func (d *Dolt) Head(ctx context.Context) (string, error) {
	rows, err := d.SQL(ctx, SQLOptions{Query: "select HASHOF('HEAD') as hash", Format: FormatCSV})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0]["hash"] == "" {
		return "", fmt.Errorf("head not found")
	}
	return rows[0]["hash"], nil
}

// Working returns the hash of the working set root.
func (d *Dolt) Working(ctx context.Context) (string, error) {
	query := fmt.Sprintf("select @@%s_working as working", d.RepoName())
	rows, err := d.SQL(ctx, SQLOptions{Query: query, Format: FormatCSV})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0]["working"] == "" {
		return "", fmt.Errorf("working head not found")
	}
	return rows[0]["working"], nil
}

// ActiveBranch returns the name of the checked-out branch.
func (d *Dolt) ActiveBranch(ctx context.Context) (string, error) {
	rows, err := d.SQL(ctx, SQLOptions{Query: "select active_branch() as a", Format: FormatCSV})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0]["a"] == "" {
		return "", fmt.Errorf("active branch not found")
	}
	return rows[0]["a"], nil
}
