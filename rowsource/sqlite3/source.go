// Package sqlite3 adapts a SQLite query's result set into a
// rowsource.Source, mirroring the teacher's database/sqlite3/database.go
// layout and its NewDatabase(config) constructor, renamed to NewSource.
// modernc.org/sqlite is pure Go, so this adapter's own tests can run an
// end-to-end, driver-backed ingestion without a running server.
package sqlite3

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/killzin666/ozone/rowsource"
)

// NewSource opens the SQLite database named by config.DbName (a file path,
// or ":memory:") and runs config.Query, returning a rowsource.Source over
// the result set.
func NewSource(ctx context.Context, config rowsource.Config) (rowsource.Source, error) {
	db, err := sql.Open("sqlite", config.DbName)
	if err != nil {
		return nil, fmt.Errorf("rowsource/sqlite3: opening connection: %w", err)
	}
	return rowsource.Open(ctx, db, config.Query)
}
