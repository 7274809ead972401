package dolt

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ResultFormat selects the serialization requested for structured query
// results. FormatNone runs the query without projecting its output.
type ResultFormat int

const (
	FormatNone ResultFormat = iota
	FormatCSV
	FormatJSON
)

func (f ResultFormat) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "none"
	}
}

// ResultParser replaces the built-in projection. It receives the path of
// the raw query output and returns an arbitrary value; the built-in
// column/row projection is bypassed entirely.
type ResultParser func(path string) (any, error)

// SQLOptions controls how a query is executed and where its output goes.
// Exactly one of the request modes may be active per call: listing saved
// queries, executing a saved query, or running a query (optionally with a
// structured result projection).
type SQLOptions struct {
	// Query is the SQL text to run.
	Query string
	// Format requests a structured result projection for Query.
	Format ResultFormat
	// Save stores Query under the given name; Message annotates it.
	Save    string
	Message string
	// ListSaved lists saved queries instead of running one.
	ListSaved bool
	// ExecuteSaved runs a previously saved query by name.
	ExecuteSaved string
	// Batch executes statements delimited by ; one after the other.
	Batch bool
	// MultiDBDir treats each repository under the directory as a database.
	MultiDBDir string
	// ResultFile redirects raw CSV output to the given path instead of
	// projecting it.
	ResultFile string
	// ResultParser substitutes a caller-supplied parser for the built-in
	// projection.
	ResultParser ResultParser
}

func (o SQLOptions) validate() error {
	if o.ListSaved {
		if o.Query != "" || o.Format != FormatNone || o.Save != "" || o.Message != "" ||
			o.Batch || o.MultiDBDir != "" || o.ExecuteSaved != "" {
			return fmt.Errorf("list saved is incompatible with other sql options")
		}
	}
	if o.ExecuteSaved != "" {
		if o.Query != "" || o.Save != "" || o.Message != "" || o.ListSaved ||
			o.Batch || o.MultiDBDir != "" || o.Format != FormatNone {
			return fmt.Errorf("execute saved is incompatible with other sql options")
		}
	}
	if o.Format != FormatNone && o.Query == "" {
		return fmt.Errorf("must provide a query to request a result format")
	}
	if o.ResultFile != "" && o.Query == "" {
		return fmt.Errorf("must provide a query to request a result file")
	}
	if o.ResultParser != nil && o.Query == "" {
		return fmt.Errorf("must provide a query to use a result parser")
	}
	return nil
}

func (o SQLOptions) args() []string {
	args := []string{"sql"}
	if o.ListSaved {
		return append(args, "--list-saved")
	}
	if o.ExecuteSaved != "" {
		return append(args, "--execute", o.ExecuteSaved)
	}
	if o.MultiDBDir != "" {
		args = append(args, "--multi-db-dir", o.MultiDBDir)
	}
	if o.Batch {
		args = append(args, "--batch")
	}
	if o.Save != "" {
		args = append(args, "--save", o.Save)
		if o.Message != "" {
			args = append(args, "--message", o.Message)
		}
	}
	if o.Query != "" {
		args = append(args, "--query", o.Query)
	}
	return args
}

// SQL executes a query against the repository. When a structured result is
// requested (Format, ResultFile, or ResultParser), output is written to a
// private temporary location, projected, and the temporary location is
// removed on every exit path. Without a structured request the command is
// run for its side effects and no rows are returned.
func (d *Dolt) SQL(ctx context.Context, opts SQLOptions) ([]Row, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	args := opts.args()

	switch {
	case opts.ResultParser != nil:
		res, err := d.sqlWithParser(ctx, args, opts.ResultParser)
		if err != nil {
			return nil, err
		}
		rows, ok := res.([]Row)
		if !ok {
			return nil, fmt.Errorf("result parser returned %T, use SQLParse to receive arbitrary values", res)
		}
		return rows, nil
	case opts.ResultFile != "":
		args = append(args, "--result-format", "csv")
		if _, err := d.ExecToFile(ctx, opts.ResultFile, args...); err != nil {
			return nil, err
		}
		return nil, nil
	case opts.Format == FormatCSV || opts.Format == FormatJSON:
		return d.sqlProjected(ctx, args, opts.Format)
	default:
		if _, err := d.Exec(ctx, args...); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// SQLParse runs a query and hands the raw output file to a caller-supplied
// parser, returning whatever the parser returns.
func (d *Dolt) SQLParse(ctx context.Context, query string, parser ResultParser) (any, error) {
	opts := SQLOptions{Query: query, ResultParser: parser}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return d.sqlWithParser(ctx, opts.args(), parser)
}

func (d *Dolt) sqlWithParser(ctx context.Context, args []string, parser ResultParser) (any, error) {
	dir, err := os.MkdirTemp("", "doltcli-sql-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	args = append(args, "--result-format", "csv")
	outFile := filepath.Join(dir, "result")
	if _, err := d.ExecToFile(ctx, outFile, args...); err != nil {
		return nil, err
	}
	return parser(outFile)
}

func (d *Dolt) sqlProjected(ctx context.Context, args []string, format ResultFormat) ([]Row, error) {
	dir, err := os.MkdirTemp("", "doltcli-sql-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	args = append(args, "--result-format", format.String())
	outFile := filepath.Join(dir, "result")
	if _, err := d.ExecToFile(ctx, outFile, args...); err != nil {
		return nil, err
	}

	f, err := os.Open(outFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return parseCSVRows(f)
	case FormatJSON:
		return parseJSONRows(f)
	default:
		return nil, fmt.Errorf("unsupported result format %v", format)
	}
}

// parseCSVRows projects row-oriented delimited text with a header row into
// column-keyed records.
func parseCSVRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseJSONRows projects a JSON document whose top-level rows field holds
// an array of row objects. Values are stringified; no type inference is
// performed across formats.
func parseJSONRows(r io.Reader) ([]Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode json rows: %w", err)
	}

	rows := make([]Row, 0, len(doc.Rows))
	for _, raw := range doc.Rows {
		row := make(Row, len(raw))
		for col, val := range raw {
			row[col] = stringifyValue(val)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stringifyValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
