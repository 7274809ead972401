package dolt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// noTablesMarker is the first output line when the working set is empty.
const noTablesMarker = "No tables in working set"

// TablesOptions widens a table listing to system tables or all tables.
type TablesOptions struct {
	System bool
	All    bool
}

// ListTables lists the tables in the working set, with content hash and
// row count per table.
func (d *Dolt) ListTables(ctx context.Context, opts TablesOptions) ([]Table, error) {
	args := []string{"ls", "--verbose"}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.System {
		args = append(args, "--system")
	}
	out, err := d.Exec(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseTables(out)
}

// ParseTables builds Table entries from verbose listing output. Lines
// before the "System tables" marker carry name, root hash, and row count;
// lines after it are bare system table names with no count.
func ParseTables(output string) ([]Table, error) {
	tables := []Table{}
	lines := splitLines(output)

	if len(lines) > 0 && strings.TrimSpace(lines[0]) == noTablesMarker {
		return tables, nil
	}

	system := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "Tables"):
			continue
		case strings.HasPrefix(trimmed, "System"):
			system = true
		case system:
			tables = append(tables, Table{Name: trimmed, System: true})
		default:
			fields := strings.Fields(trimmed)
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed table listing line: %q", line)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("malformed row count in table listing line %q: %w", line, err)
			}
			tables = append(tables, Table{Name: fields[0], Root: fields[1], RowCount: &count})
		}
	}
	return tables, nil
}

// TableImportOptions parameterizes a table import from a file. Exactly one
// of Create, Update, Replace must be set; Create and Replace require a
// primary key because they install a newly inferred schema.
type TableImportOptions struct {
	Create  bool
	Update  bool
	Replace bool
	// Force overwrites existing data and must be requested explicitly.
	Force       bool
	PrimaryKey  []string
	MappingFile string
	FileType    string
	Delim       string
	// Continue keeps importing past bad rows.
	Continue bool
}

func (o TableImportOptions) validate() error {
	count := 0
	for _, set := range []bool{o.Create, o.Update, o.Replace} {
		if set {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of create, update, replace must be set")
	}
	if (o.Create || o.Replace) && len(o.PrimaryKey) == 0 {
		return fmt.Errorf("a primary key is required when creating or replacing a table")
	}
	return nil
}

// ImportTable imports a data file into the named table, inferring the
// schema from the file.
func (d *Dolt) ImportTable(ctx context.Context, table, filename string, opts TableImportOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	args := []string{"table", "import"}
	if opts.Create {
		args = append(args, "--create-table")
	}
	if opts.Update {
		args = append(args, "--update-table")
	}
	if opts.Replace {
		args = append(args, "--replace-table")
	}
	if opts.FileType != "" {
		args = append(args, "--file-type", opts.FileType)
	}
	if len(opts.PrimaryKey) > 0 {
		args = append(args, "--pk", strings.Join(opts.PrimaryKey, ","))
	}
	if opts.MappingFile != "" {
		args = append(args, "--map", opts.MappingFile)
	}
	if opts.Delim != "" {
		args = append(args, "--delim", opts.Delim)
	}
	if opts.Continue {
		args = append(args, "--continue")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	args = append(args, table, filename)

	_, err := d.Exec(ctx, args...)
	return err
}

// TableExportOptions parameterizes a table export to a file.
type TableExportOptions struct {
	Force       bool
	Continue    bool
	Schema      string
	MappingFile string
	PrimaryKey  []string
	FileType    string
}

// ExportTable exports the named table to a file.
func (d *Dolt) ExportTable(ctx context.Context, table, filename string, opts TableExportOptions) error {
	args := []string{"table", "export"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.Continue {
		args = append(args, "--continue")
	}
	if opts.Schema != "" {
		args = append(args, "--schema", opts.Schema)
	}
	if opts.MappingFile != "" {
		args = append(args, "--map", opts.MappingFile)
	}
	if len(opts.PrimaryKey) > 0 {
		args = append(args, "--pk", strings.Join(opts.PrimaryKey, ","))
	}
	if opts.FileType != "" {
		args = append(args, "--file-type", opts.FileType)
	}
	args = append(args, table, filename)

	_, err := d.Exec(ctx, args...)
	return err
}

// RemoveTables removes the given tables from the working set.
func (d *Dolt) RemoveTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to remove")
	}
	args := append([]string{"rm"}, tables...)
	_, err := d.Exec(ctx, args...)
	return err
}

// RenameTable renames a table. Force overrides working-set changes.
func (d *Dolt) RenameTable(ctx context.Context, oldTable, newTable string, force bool) error {
	args := []string{"table", "mv"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, oldTable, newTable)
	_, err := d.Exec(ctx, args...)
	return err
}

// CopyTable copies a table, optionally reading the source at a commit.
func (d *Dolt) CopyTable(ctx context.Context, oldTable, newTable, commit string, force bool) error {
	args := []string{"table", "cp"}
	if force {
		args = append(args, "--force")
	}
	if commit != "" {
		args = append(args, commit)
	}
	args = append(args, oldTable, newTable)
	_, err := d.Exec(ctx, args...)
	return err
}
