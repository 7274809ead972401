package dolt

import (
	"context"
	"fmt"
	"strings"

	dolterrors "doltcli.dev/doltcli/errors"
)

// MergeOutcome reports how a merge concluded.
type MergeOutcome int

const (
	// MergeFastForward means the merge required no new commit.
	MergeFastForward MergeOutcome = iota
	// MergeConflict means the merge conflicted and was aborted; the
	// working set is back in its pre-merge state.
	MergeConflict
	// MergeManual means a conflict-free, non-fast-forward merge was
	// completed by staging the reported tables and committing.
	MergeManual
)

func (o MergeOutcome) String() string {
	switch o {
	case MergeFastForward:
		return "fast-forward"
	case MergeConflict:
		return "conflict"
	case MergeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// MergeOptions parameterizes a merge of Branch into the current branch.
type MergeOptions struct {
	Branch string
	// Message is used when the merge needs a commit; defaulted when empty.
	Message string
	Squash  bool
}

// mergeConflictLine is the fixed position of the CONFLICT marker in the
// conflict output shape.
const mergeConflictLine = 2

// Merge merges a branch into the current branch. The working set must be
// clean and the branch must exist, both checked before any process is
// spawned. Conflicted merges are aborted immediately; conflicts are never
// resolved programmatically.
//
// The outcome is classified from the structural shape of the merge output
// (line count plus a Fast-forward or CONFLICT marker at a fixed position).
// This depends on the exact line layout the tool prints and is a known
// fragility: output matching none of the known shapes, with a clean
// working set afterwards, is reported as a MergeOutcomeError rather than
// guessed at.
func (d *Dolt) Merge(ctx context.Context, opts MergeOptions) (MergeOutcome, error) {
	active, branches, err := d.ListBranches(ctx)
	if err != nil {
		return 0, err
	}

	status, err := d.Status(ctx)
	if err != nil {
		return 0, err
	}
	if !status.IsClean {
		return 0, fmt.Errorf(
			"changes in the working set, commit before merging %s into %s", opts.Branch, active.Name)
	}

	known := false
	for _, b := range branches {
		if b.Name == opts.Branch {
			known = true
			break
		}
	}
	if !known {
		return 0, fmt.Errorf("cannot merge non-existent branch %s into %s", opts.Branch, active.Name)
	}

	args := []string{"merge"}
	if opts.Squash {
		args = append(args, "--squash")
	}
	args = append(args, opts.Branch)

	out, err := d.execRaw(ctx, args...)
	if err != nil {
		return 0, err
	}

	lines := strings.Split(out, "\n")

	if len(lines) == 3 && strings.Contains(lines[1], "Fast-forward") {
		return MergeFastForward, nil
	}

	if len(lines) == 5 && strings.HasPrefix(lines[mergeConflictLine], "CONFLICT") {
		if _, err := d.Exec(ctx, "merge", "--abort"); err != nil {
			return 0, fmt.Errorf("failed to abort conflicted merge: %w", err)
		}
		return MergeConflict, nil
	}

	// Anything else should be a merge waiting for a manual finish. If the
	// working set has nothing to stage the output shape is genuinely
	// unrecognized.
	status, err = d.Status(ctx)
	if err != nil {
		return 0, err
	}
	if status.IsClean && len(status.AddedTables) == 0 && len(status.ModifiedTables) == 0 {
		return 0, dolterrors.NewMergeOutcomeError(opts.Branch, out)
	}

	for table := range status.AddedTables {
		if _, err := d.Add(ctx, table); err != nil {
			return 0, err
		}
	}
	for table := range status.ModifiedTables {
		if _, err := d.Add(ctx, table); err != nil {
			return 0, err
		}
	}

	message := opts.Message
	if message == "" {
		message = fmt.Sprintf("Merged %s into %s", opts.Branch, active.Name)
	}
	if err := d.Commit(ctx, CommitOptions{Message: message}); err != nil {
		return 0, err
	}
	return MergeManual, nil
}
