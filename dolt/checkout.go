package dolt

import (
	"context"
	"fmt"
)

// CheckoutOptions parameterizes a checkout. Branch and Tables are mutually
// exclusive: a checkout either switches branches or restores tables, never
// both.
type CheckoutOptions struct {
	// Branch to check out, or to create when NewBranch is set.
	Branch string
	// NewBranch creates Branch instead of switching to it.
	NewBranch bool
	// StartPoint is the tip of the new branch.
	StartPoint string
	// Tables restores the named tables from HEAD.
	Tables []string
	// Track sets the upstream branch to track.
	Track string
}

// Checkout switches branches, creates a branch, or restores tables.
func (d *Dolt) Checkout(ctx context.Context, opts CheckoutOptions) error {
	if opts.Branch != "" && len(opts.Tables) > 0 {
		return fmt.Errorf("no tables may be provided when checking out a branch")
	}

	args := []string{"checkout"}
	if opts.Branch != "" {
		if opts.NewBranch {
			args = append(args, "-b")
		}
		args = append(args, opts.Branch)
		if opts.StartPoint != "" {
			args = append(args, opts.StartPoint)
		}
	}
	args = append(args, opts.Tables...)
	if opts.Track != "" {
		args = append(args, "--track", opts.Track)
	}

	_, err := d.Exec(ctx, args...)
	return err
}

// DetachHead runs fn with HEAD at the given commit and restores the
// previously active branch afterwards. If a branch already points at the
// commit it is checked out directly; otherwise a scratch branch is created
// at the commit.
func (d *Dolt) DetachHead(ctx context.Context, commit string, fn func() error) error {
	active, _, err := d.ListBranches(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("select name, hash from dolt_branches where hash = '%s'", commit)
	rows, err := d.ReadRowsSQL(ctx, query)
	if err != nil {
		return err
	}

	switched := false
	if len(rows) > 0 {
		if active.Hash != rows[0]["hash"] {
			if err := d.Checkout(ctx, CheckoutOptions{Branch: rows[0]["name"]}); err != nil {
				return err
			}
			switched = true
		}
	} else {
		short := commit
		if len(short) > 5 {
			short = short[:5]
		}
		scratch := fmt.Sprintf("detached_HEAD_at_%s", short)
		err := d.Checkout(ctx, CheckoutOptions{Branch: scratch, NewBranch: true, StartPoint: commit})
		if err != nil {
			return err
		}
		switched = true
	}

	defer func() {
		if switched {
			_ = d.Checkout(ctx, CheckoutOptions{Branch: active.Name})
		}
	}()

	return fn()
}
