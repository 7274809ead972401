package dolt

import (
	"context"

	dolterrors "doltcli.dev/doltcli/errors"
)

// ListBranches returns the active branch and all known branches. The
// active branch is resolved by a separate query that must match exactly
// one record; anything else is surfaced as a distinct error rather than
// defaulted.
func (d *Dolt) ListBranches(ctx context.Context) (*Branch, []Branch, error) {
	rows, err := d.ReadRowsSQL(ctx, "select * from dolt_branches")
	if err != nil {
		return nil, nil, err
	}
	branches := make([]Branch, 0, len(rows))
	for _, row := range rows {
		branches = append(branches, branchFromRow(row))
	}

	activeRows, err := d.ReadRowsSQL(ctx, "select * from dolt_branches where name = (select active_branch())")
	if err != nil {
		return nil, nil, err
	}
	if len(activeRows) != 1 {
		return nil, nil, dolterrors.NewActiveBranchError(len(activeRows))
	}
	active := branchFromRow(activeRows[0])

	return &active, branches, nil
}

func branchFromRow(row Row) Branch {
	return Branch{
		Name:                 row["name"],
		Hash:                 row["hash"],
		LatestCommitter:      row["latest_committer"],
		LatestCommitterEmail: row["latest_committer_email"],
		LatestCommitDate:     row["latest_commit_date"],
		LatestCommitMessage:  row["latest_commit_message"],
	}
}

// CreateBranch creates a branch, optionally at startPoint. Force moves an
// existing branch of the same name and must be requested explicitly.
func (d *Dolt) CreateBranch(ctx context.Context, name, startPoint string, force bool) error {
	args := []string{"branch"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, name)
	if startPoint != "" {
		args = append(args, startPoint)
	}
	_, err := d.Exec(ctx, args...)
	return err
}

// DeleteBranch deletes a branch.
func (d *Dolt) DeleteBranch(ctx context.Context, name string, force bool) error {
	args := []string{"branch"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, "--delete", name)
	_, err := d.Exec(ctx, args...)
	return err
}

// MoveBranch renames a branch. An empty oldName renames the current
// branch.
func (d *Dolt) MoveBranch(ctx context.Context, oldName, newName string, force bool) error {
	args := []string{"branch"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, "--move")
	if oldName != "" {
		args = append(args, oldName)
	}
	args = append(args, newName)
	_, err := d.Exec(ctx, args...)
	return err
}

// CopyBranch copies a branch. An empty oldName copies the current branch.
func (d *Dolt) CopyBranch(ctx context.Context, oldName, newName string, force bool) error {
	args := []string{"branch"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, "--copy")
	if oldName != "" {
		args = append(args, oldName)
	}
	args = append(args, newName)
	_, err := d.Exec(ctx, args...)
	return err
}
