package dolt

import (
	"context"
	"fmt"
	"strconv"
)

// DiffOptions parameterizes a diff. At most one of Data, Schema, Summary
// may be set; Where and Limit apply to data diffs only.
type DiffOptions struct {
	// Commit to diff against the tip of the current branch.
	Commit string
	// OtherCommit pins the second side of the diff.
	OtherCommit string
	Tables      []string
	Data        bool
	Schema      bool
	Summary     bool
	// SQL shows the diff as SQL statements.
	SQL   bool
	Where string
	Limit int
}

// Diff returns the diff output for the given commits and tables.
func (d *Dolt) Diff(ctx context.Context, opts DiffOptions) (string, error) {
	count := 0
	for _, set := range []bool{opts.Data, opts.Schema, opts.Summary} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", fmt.Errorf("at most one of data, schema, summary may be set")
	}

	args := []string{"diff"}
	if opts.Data {
		if opts.Where != "" {
			args = append(args, "--where", opts.Where)
		}
		if opts.Limit > 0 {
			args = append(args, "--limit", strconv.Itoa(opts.Limit))
		}
	}
	if opts.Summary {
		args = append(args, "--summary")
	}
	if opts.Schema {
		args = append(args, "--schema")
	}
	if opts.SQL {
		args = append(args, "--sql")
	}
	if opts.Commit != "" {
		args = append(args, opts.Commit)
	}
	if opts.OtherCommit != "" {
		args = append(args, opts.OtherCommit)
	}
	args = append(args, opts.Tables...)

	return d.Exec(ctx, args...)
}

// Blame returns the blame output for a table, showing the authorship of
// the last change to each row.
func (d *Dolt) Blame(ctx context.Context, table, rev string) (string, error) {
	args := []string{"blame"}
	if rev != "" {
		args = append(args, rev)
	}
	args = append(args, table)
	return d.Exec(ctx, args...)
}
