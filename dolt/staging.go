package dolt

import (
	"context"
	"fmt"
)

// Add stages the given tables for the next commit and returns the
// resulting status.
func (d *Dolt) Add(ctx context.Context, tables ...string) (*Status, error) {
	args := append([]string{"add"}, tables...)
	if _, err := d.Exec(ctx, args...); err != nil {
		return nil, err
	}
	return d.Status(ctx)
}

// ResetOptions selects what a reset applies to. Hard and Soft are mutually
// exclusive, and neither may be combined with an explicit table list; the
// destructive hard form is never the default.
type ResetOptions struct {
	Tables []string
	Hard   bool
	Soft   bool
}

// Reset restores tables with working-set changes to their value at the tip
// of the current branch, or moves the staged state with --soft/--hard.
func (d *Dolt) Reset(ctx context.Context, opts ResetOptions) error {
	if opts.Hard && opts.Soft {
		return fmt.Errorf("specify one of: hard, soft")
	}
	if (opts.Hard || opts.Soft) && len(opts.Tables) > 0 {
		return fmt.Errorf("specify either hard/soft flag, or tables to reset")
	}

	args := []string{"reset"}
	switch {
	case opts.Hard:
		args = append(args, "--hard")
	case opts.Soft:
		args = append(args, "--soft")
	case len(opts.Tables) == 0:
		args = append(args, "--soft")
	default:
		args = append(args, opts.Tables...)
	}

	_, err := d.Exec(ctx, args...)
	return err
}
