// Package rowsource implements the "thin row-store adapter used as an
// ingestion source" spec §6 names as an external boundary contract. Source
// is the shared contract; sqlSource is the database/sql-backed core every
// per-driver subpackage (mysql, postgres, mssql, sqlite3) wraps, mirroring
// the teacher's one-package-per-driver database/<driver>/database.go
// layout and its NewDatabase(config) constructor, renamed to NewSource.
package rowsource

import (
	"context"
	"database/sql"
	"fmt"
)

// Config is the connection configuration shared by every SQL-backed
// adapter, mirroring the teacher's database.Config. Not every field
// applies to every driver.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DbName   string
	Socket   string
	SslMode  string

	// Query is the SQL statement whose result set becomes the row
	// source's rows; its result columns become the column list.
	Query string
}

// Source is the contract ingest.Build consumes: ingest.RowSource, spelled
// out locally so this package does not need to import ingest just to name
// its own return type.
type Source interface {
	Columns() []string
	Next(ctx context.Context) (row map[string]string, ok bool, err error)
	Close() error
}

// sqlSource wraps a *sql.Rows as a Source: each row is scanned into
// nullable strings, so every driver's adapter can share this single
// scanning loop regardless of wire type.
type sqlSource struct {
	db      *sql.DB
	rows    *sql.Rows
	columns []string
}

// Open runs query against db and returns the resulting Source. The
// per-driver packages only need to produce *sql.DB and a DSN; this
// function does the rest.
func Open(ctx context.Context, db *sql.DB, query string) (Source, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("rowsource: running query: %w", err)
	}
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		db.Close()
		return nil, fmt.Errorf("rowsource: reading result columns: %w", err)
	}
	return &sqlSource{db: db, rows: rows, columns: columns}, nil
}

func (s *sqlSource) Columns() []string { return s.columns }

// Next scans the next result row into a column-name -> string mapping. A
// SQL NULL becomes the empty string, consistent with the CSV reader's
// untyped text boundary (spec §7: downstream ingestion coerces or skips
// per field, so the row source itself never needs to represent NULL
// specially).
func (s *sqlSource) Next(ctx context.Context) (map[string]string, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return nil, false, fmt.Errorf("rowsource: reading rows: %w", err)
		}
		return nil, false, nil
	}
	values := make([]sql.NullString, len(s.columns))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := s.rows.Scan(ptrs...); err != nil {
		return nil, false, fmt.Errorf("rowsource: scanning row: %w", err)
	}
	row := make(map[string]string, len(s.columns))
	for i, col := range s.columns {
		if values[i].Valid {
			row[col] = values[i].String
		} else {
			row[col] = ""
		}
	}
	return row, true, nil
}

func (s *sqlSource) Close() error {
	rowsErr := s.rows.Close()
	dbErr := s.db.Close()
	if rowsErr != nil {
		return fmt.Errorf("rowsource: closing rows: %w", rowsErr)
	}
	if dbErr != nil {
		return fmt.Errorf("rowsource: closing connection: %w", dbErr)
	}
	return nil
}
