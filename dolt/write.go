package dolt

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImportMode governs how incoming tabular data reconciles with an
// existing table.
type ImportMode string

const (
	ModeCreate      ImportMode = "create"
	ModeForceCreate ImportMode = "force_create"
	ModeReplace     ImportMode = "replace"
	ModeUpdate      ImportMode = "update"
)

var importModeFlags = map[ImportMode][]string{
	ModeCreate:      {"-c"},
	ModeForceCreate: {"-f", "-c"},
	ModeReplace:     {"-r"},
	ModeUpdate:      {"-u"},
}

// WriteOptions parameterizes a tabular write into a named table. When
// Mode is empty the table listing is probed: an absent table imports in
// create mode, a present one in update mode.
type WriteOptions struct {
	// Mode selects the import mode; probed when empty.
	Mode       ImportMode
	PrimaryKey []string
	// Continue keeps importing past bad rows.
	Continue bool
	// Commit stages the table and commits as the final step of the same
	// call.
	Commit        bool
	CommitMessage string
	// CommitDate overrides the commit timestamp when non-zero.
	CommitDate time.Time
}

// WriteRows writes row-oriented records into the named table. The header
// is the union of all row keys, in sorted order; missing values are
// written empty.
func (d *Dolt) WriteRows(ctx context.Context, table string, rows []Row, opts WriteOptions) error {
	writer := func(path string) error {
		nameSet := map[string]bool{}
		for _, row := range rows {
			for col := range row {
				nameSet[col] = true
			}
		}
		fieldnames := make([]string, 0, len(nameSet))
		for col := range nameSet {
			fieldnames = append(fieldnames, col)
		}
		sort.Strings(fieldnames)

		return writeCSV(path, fieldnames, rows)
	}
	return d.importHelper(ctx, table, writer, opts)
}

// WriteColumns writes a column-oriented mapping into the named table. All
// columns must have the same length; mismatched lengths fail before any
// file is written.
func (d *Dolt) WriteColumns(ctx context.Context, table string, columns map[string][]string, opts WriteOptions) error {
	writer := func(path string) error {
		length := -1
		for _, vals := range columns {
			if length >= 0 && len(vals) != length {
				return fmt.Errorf("must pass columns of identical length")
			}
			length = len(vals)
		}

		fieldnames := make([]string, 0, len(columns))
		for col := range columns {
			fieldnames = append(fieldnames, col)
		}
		sort.Strings(fieldnames)

		return writeCSV(path, fieldnames, ColumnsToRows(columns))
	}
	return d.importHelper(ctx, table, writer, opts)
}

// WriteFile imports a pre-existing data file into the named table.
func (d *Dolt) WriteFile(ctx context.Context, table, file string, opts WriteOptions) error {
	if file == "" {
		return fmt.Errorf("must provide a file to import")
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("import file not readable: %w", err)
	}
	return d.runImport(ctx, table, file, opts)
}

// importHelper stages data into a uniquely named temporary file, imports
// it, and removes the file on every exit path.
func (d *Dolt) importHelper(ctx context.Context, table string, write func(path string) error, opts WriteOptions) error {
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("doltcli-%s.csv", uuid.NewString()))
	defer os.Remove(fname)

	if err := write(fname); err != nil {
		return err
	}
	return d.runImport(ctx, table, fname, opts)
}

func (d *Dolt) runImport(ctx context.Context, table, file string, opts WriteOptions) error {
	mode, err := d.resolveImportMode(ctx, table, opts.Mode)
	if err != nil {
		return err
	}

	args := []string{"table", "import", table}
	args = append(args, importModeFlags[mode]...)
	if len(opts.PrimaryKey) > 0 {
		args = append(args, "--pk="+strings.Join(opts.PrimaryKey, ","))
	}
	if opts.Continue {
		args = append(args, "--continue")
	}
	args = append(args, file)

	if _, err := d.Exec(ctx, args...); err != nil {
		return err
	}

	if opts.Commit {
		message := opts.CommitMessage
		if message == "" {
			message = fmt.Sprintf("Committing write to table %s in %s mode", table, mode)
		}
		if _, err := d.Add(ctx, table); err != nil {
			return fmt.Errorf("import succeeded but staging %s failed: %w", table, err)
		}
		err := d.Commit(ctx, CommitOptions{Message: message, Date: opts.CommitDate})
		if err != nil {
			return fmt.Errorf("import succeeded but commit failed: %w", err)
		}
	}
	return nil
}

// resolveImportMode validates an explicit mode or probes the table
// listing to pick one.
func (d *Dolt) resolveImportMode(ctx context.Context, table string, mode ImportMode) (ImportMode, error) {
	if mode != "" {
		if _, ok := importModeFlags[mode]; !ok {
			return "", fmt.Errorf("import mode must be one of create, force_create, replace, update; got %q", mode)
		}
		return mode, nil
	}

	tables, err := d.ListTables(ctx, TablesOptions{})
	if err != nil {
		return "", err
	}
	for _, t := range tables {
		if t.Name == table {
			return ModeUpdate, nil
		}
	}
	return ModeCreate, nil
}

func writeCSV(path string, fieldnames []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fieldnames); err != nil {
		return err
	}
	record := make([]string, len(fieldnames))
	for _, row := range rows {
		for i, col := range fieldnames {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// ColumnsToRows projects a column-oriented mapping into row-oriented
// records. Rows are sized by the longest column; shorter columns are
// absent from the trailing rows.
func ColumnsToRows(columns map[string][]string) []Row {
	rowCount := 0
	for _, vals := range columns {
		if len(vals) > rowCount {
			rowCount = len(vals)
		}
	}

	rows := make([]Row, rowCount)
	for i := range rows {
		rows[i] = Row{}
	}
	for col, vals := range columns {
		for i, val := range vals {
			rows[i][col] = val
		}
	}
	return rows
}

// RowsToColumns projects row-oriented records into a column-oriented
// mapping. It is the inverse of ColumnsToRows for rectangular record
// sets.
func RowsToColumns(rows []Row) map[string][]string {
	columns := map[string][]string{}
	for _, row := range rows {
		for col, val := range row {
			columns[col] = append(columns[col], val)
		}
	}
	return columns
}
