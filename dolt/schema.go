package dolt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// SchemaImportOptions parameterizes a schema import, which infers a table
// schema from a data file. Exactly one of Create, Update, Replace must be
// set; Create and Replace require a primary key because they install a
// brand-new schema.
type SchemaImportOptions struct {
	Create  bool
	Update  bool
	Replace bool
	// DryRun outputs the SQL that would run without executing it.
	DryRun bool
	// KeepTypes keeps the current type of columns that already exist.
	KeepTypes      bool
	FileType       string
	PrimaryKey     []string
	MappingFile    string
	FloatThreshold float64
	Delim          string
}

func (o SchemaImportOptions) validate() error {
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
		return fmt.Errorf("a primary key is required when creating or replacing a schema")
	}
	return nil
}

// ImportSchema infers a schema for the named table from a data file.
func (d *Dolt) ImportSchema(ctx context.Context, table, filename string, opts SchemaImportOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	args := []string{"schema", "import"}
	if opts.Create {
		args = append(args, "--create")
	}
	if opts.Update {
		args = append(args, "--update")
	}
	if opts.Replace {
		args = append(args, "--replace")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	if opts.KeepTypes {
		args = append(args, "--keep-types")
	}
	if opts.FileType != "" {
		args = append(args, "--file-type", opts.FileType)
	}
	if len(opts.PrimaryKey) > 0 {
		args = append(args, "--pks", strings.Join(opts.PrimaryKey, ","))
	}
	if opts.MappingFile != "" {
		args = append(args, "--map", opts.MappingFile)
	}
	if opts.FloatThreshold > 0 {
		args = append(args, "--float-threshold", strconv.FormatFloat(opts.FloatThreshold, 'f', -1, 64))
	}
	if opts.Delim != "" {
		args = append(args, "--delim", opts.Delim)
	}
	args = append(args, table, filename)

	_, err := d.Exec(ctx, args...)
	return err
}

// ExportSchema exports the schema of the named table, to a file when
// filename is non-empty, returning the output otherwise.
func (d *Dolt) ExportSchema(ctx context.Context, table, filename string) (string, error) {
	args := []string{"schema", "export", table}
	if filename != "" {
		args = append(args, "--filename", filename)
		if _, err := d.Exec(ctx, args...); err != nil {
			return "", err
		}
		return filename, nil
	}
	return d.Exec(ctx, args...)
}

// ShowSchema returns the schema of the given tables, at an optional
// commit.
func (d *Dolt) ShowSchema(ctx context.Context, commit string, tables ...string) (string, error) {
	args := []string{"schema", "show"}
	if commit != "" {
		args = append(args, commit)
	}
	args = append(args, tables...)
	return d.Exec(ctx, args...)
}
