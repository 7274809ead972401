package dolt

import (
	"context"
	"strings"
)

// Status reports the state of the working set. The result is built fresh
// on every call; nothing is cached.
func (d *Dolt) Status(ctx context.Context) (*Status, error) {
	out, err := d.Exec(ctx, "status")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// ParseStatus builds a Status from the raw output of the status command.
//
// A literal "clean" marker anywhere in the output short-circuits to the
// clean state. Otherwise lines are consumed in order: the section headers
// flip a staged flag, and "modified"/"new table" lines record the named
// table under the current flag. Unrecognized lines are ignored.
func ParseStatus(output string) *Status {
	modified := map[string]bool{}
	added := map[string]bool{}

	if strings.Contains(output, "clean") {
		return &Status{IsClean: true, ModifiedTables: modified, AddedTables: added}
	}

	staged := false
	for _, line := range splitLines(output) {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "Changes to be committed"):
			staged = true
		case strings.HasPrefix(trimmed, "Changes not staged for commit"):
			staged = false
		case strings.HasPrefix(trimmed, "Untracked files"):
			staged = false
		case strings.HasPrefix(trimmed, "modified"):
			if name := tableNameFromChangeLine(trimmed); name != "" {
				modified[name] = staged
			}
		case strings.HasPrefix(trimmed, "new table"):
			if name := tableNameFromChangeLine(trimmed); name != "" {
				added[name] = staged
			}
		}
	}

	return &Status{IsClean: false, ModifiedTables: modified, AddedTables: added}
}

// tableNameFromChangeLine extracts the table name from a "label: name"
// status line.
func tableNameFromChangeLine(line string) string {
	_, name, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}
