package dolt

import (
	"context"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CommitHistory is an insertion-ordered mapping from commit ref to Commit,
// preserving the date-descending order the log query returns.
type CommitHistory = orderedmap.OrderedMap[string, *Commit]

// LogOptions bounds and filters a history query. Both are pushed down into
// the underlying query rather than applied after the fact.
type LogOptions struct {
	// Number limits the history to the given count when positive.
	Number int
	// Commit restricts the history to a single commit ref.
	Commit string
}

// logTableQuery builds the flat (commit, parent) join query the history is
// reconstructed from.
func logTableQuery(opts LogOptions) string {
	var b strings.Builder
	b.WriteString(`select
    dc.commit_hash as commit_hash,
    dca.parent_hash as parent_hash,
    committer as committer,
    email as email,
    date as date,
    message as message
from
    dolt_log as dc
    left outer join dolt_commit_ancestors as dca
        on dc.commit_hash = dca.commit_hash`)

	if opts.Commit != "" {
		fmt.Fprintf(&b, "\nwhere dc.commit_hash = '%s'", opts.Commit)
	}
	b.WriteString("\norder by date desc")
	if opts.Number > 0 {
		fmt.Fprintf(&b, "\nlimit %d", opts.Number)
	}
	return b.String()
}

// Log reconstructs the commit history of the current branch as typed
// Commit entries keyed by ref, newest first.
func (d *Dolt) Log(ctx context.Context, opts LogOptions) (*CommitHistory, error) {
	rows, err := d.ReadRowsSQL(ctx, logTableQuery(opts))
	if err != nil {
		return nil, err
	}
	return ParseCommits(rows)
}

// ParseCommits folds a flat ordered sequence of (commit, parent) join rows
// into a commit graph. The first row for a ref creates the Commit with a
// single parent; every subsequent row for the same ref appends a merge
// parent. More than two parents for one ref is a hard error.
func ParseCommits(rows []Row) (*CommitHistory, error) {
	commits := orderedmap.New[string, *Commit]()
	for _, row := range rows {
		ref := row["commit_hash"]
		if existing, ok := commits.Get(ref); ok {
			if err := existing.AppendParent(row["parent_hash"]); err != nil {
				return nil, err
			}
			continue
		}
		commit := &Commit{
			Ref:       ref,
			Timestamp: row["date"],
			Author:    row["committer"],
			Email:     row["email"],
			Message:   row["message"],
			Parents:   []string{row["parent_hash"]},
		}
		commits.Set(ref, commit)
	}
	return commits, nil
}
