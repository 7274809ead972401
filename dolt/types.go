package dolt

import (
	"fmt"

	dolterrors "doltcli.dev/doltcli/errors"
)

// Row is a single query result record mapping column name to value. Values
// are always strings, regardless of the serialization they were read from.
type Row map[string]string

// Status summarizes the working set of a repository. If IsClean is true,
// both table maps are empty. The boolean value of each map entry reports
// whether the change is staged.
type Status struct {
	IsClean        bool
	ModifiedTables map[string]bool
	AddedTables    map[string]bool
}

// Table is a snapshot of a table in the working set, as reported by a
// listing. It is not a live handle; RowCount is nil for system tables.
type Table struct {
	Name     string
	Root     string
	RowCount *int
	System   bool
}

// Branch represents a branch and the commit it points to. The last-commit
// fields mirror the dolt_branches system table and may be empty.
type Branch struct {
	Name                 string
	Hash                 string
	LatestCommitter      string
	LatestCommitterEmail string
	LatestCommitDate     string
	LatestCommitMessage  string
}

func (b Branch) String() string {
	return fmt.Sprintf("branch name: %s, hash: %s", b.Name, b.Hash)
}

// Commit holds the metadata of a single commit. Parents holds one ref, or
// two for merge commits; Merge is true iff there is more than one parent.
type Commit struct {
	Ref       string
	Timestamp string
	Author    string
	Email     string
	Message   string
	Parents   []string
	Merge     bool
}

func (c *Commit) String() string {
	return fmt.Sprintf("%s: %s @ %s, %s", c.Ref, c.Author, c.Timestamp, c.Message)
}

// AppendParent records an additional parent ref, flipping the commit to a
// merge. A commit has at most two parents in this model; a third is an
// error rather than silently dropped data.
func (c *Commit) AppendParent(parent string) error {
	if len(c.Parents) >= 2 {
		return fmt.Errorf("%w: %s", dolterrors.ErrTooManyParents, c.Ref)
	}
	c.Parents = append(c.Parents, parent)
	c.Merge = len(c.Parents) > 1
	return nil
}

// KeyPair represents a credential key pair used to authenticate with
// remotes. At most one key pair is active at a time.
type KeyPair struct {
	PublicKey string
	KeyID     string
	Active    bool
}

// Remote is a named remote, effectively a name and URL pair.
type Remote struct {
	Name string
	URL  string
}
