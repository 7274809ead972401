package dolt

import (
	"context"
	"time"
)

// commitDateFormat is the timestamp layout passed to --date.
const commitDateFormat = "2006-01-02T15:04:05"

// CommitOptions parameterizes a commit of the currently staged changes.
type CommitOptions struct {
	Message    string
	AllowEmpty bool
	// Date overrides the commit timestamp when non-zero.
	Date time.Time
}

// Commit creates a commit from the staged changes in the working set.
func (d *Dolt) Commit(ctx context.Context, opts CommitOptions) error {
	args := []string{"commit", "-m", opts.Message}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if !opts.Date.IsZero() {
		args = append(args, "--date", opts.Date.Format(commitDateFormat))
	}
	_, err := d.Exec(ctx, args...)
	return err
}
