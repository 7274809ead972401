package dolt

import (
	"context"
	"fmt"
)

// readTableQuery builds a select over a table, optionally pinned to a
// commit with AS OF.
func readTableQuery(table, asOf string) string {
	query := fmt.Sprintf("SELECT * FROM `%s`", table)
	if asOf != "" {
		query = fmt.Sprintf("%s AS OF \"%s\"", query, asOf)
	}
	return query
}

// ReadRows reads a table into row-oriented records, optionally at a
// commit.
func (d *Dolt) ReadRows(ctx context.Context, table, asOf string) ([]Row, error) {
	return d.ReadRowsSQL(ctx, readTableQuery(table, asOf))
}

// ReadColumns reads a table into a column-oriented mapping, optionally at
// a commit.
func (d *Dolt) ReadColumns(ctx context.Context, table, asOf string) (map[string][]string, error) {
	return d.ReadColumnsSQL(ctx, readTableQuery(table, asOf))
}

// ReadRowsSQL runs a query and returns its result as row-oriented
// records.
func (d *Dolt) ReadRowsSQL(ctx context.Context, query string) ([]Row, error) {
	return d.SQL(ctx, SQLOptions{Query: query, Format: FormatCSV})
}

// ReadColumnsSQL runs a query and returns its result as a column-oriented
// mapping.
func (d *Dolt) ReadColumnsSQL(ctx context.Context, query string) (map[string][]string, error) {
	rows, err := d.ReadRowsSQL(ctx, query)
	if err != nil {
		return nil, err
	}
	return RowsToColumns(rows), nil
}
