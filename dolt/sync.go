package dolt

import (
	"context"
	"fmt"
)

// PushOptions parameterizes a push to a remote. Force overwrites the
// upstream history and must be requested explicitly.
type PushOptions struct {
	Remote string
	// Refspec optionally names a branch to push.
	Refspec string
	// SetUpstream adds an upstream reference for every pushed branch.
	SetUpstream bool
	Force       bool
}

// Push pushes the current branch (or Refspec) to a remote.
func (d *Dolt) Push(ctx context.Context, opts PushOptions) error {
	if opts.Remote == "" {
		return fmt.Errorf("must provide a remote to push to")
	}
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, opts.Remote)
	if opts.Refspec != "" {
		args = append(args, opts.Refspec)
	}
	_, err := d.Exec(ctx, args...)
	return err
}

// Pull pulls the latest changes from a remote, defaulting to origin. An
// optional branch selects what to pull.
func (d *Dolt) Pull(ctx context.Context, remote, branch string) error {
	if remote == "" {
		remote = "origin"
	}
	args := []string{"pull", remote}
	if branch != "" {
		args = append(args, branch)
	}
	_, err := d.Exec(ctx, args...)
	return err
}

// FetchOptions parameterizes a fetch from a remote.
type FetchOptions struct {
	Remote   string
	Refspecs []string
	// Force overrides local history with the remote's.
	Force bool
}

// Fetch fetches branches from a remote, defaulting to origin.
func (d *Dolt) Fetch(ctx context.Context, opts FetchOptions) error {
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	args := []string{"fetch"}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, opts.Remote)
	args = append(args, opts.Refspecs...)
	_, err := d.Exec(ctx, args...)
	return err
}
