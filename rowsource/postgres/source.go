// Package postgres adapts a PostgreSQL query's result set into a
// rowsource.Source, mirroring the teacher's database/postgres/database.go
// layout and its NewDatabase(config) constructor, renamed to NewSource.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/killzin666/ozone/rowsource"
)

// NewSource opens a PostgreSQL connection per config and runs
// config.Query, returning a rowsource.Source over the result set.
func NewSource(ctx context.Context, config rowsource.Config) (rowsource.Source, error) {
	db, err := sql.Open("postgres", dsn(config))
	if err != nil {
		return nil, fmt.Errorf("rowsource/postgres: opening connection: %w", err)
	}
	return rowsource.Open(ctx, db, config.Query)
}

func dsn(config rowsource.Config) string {
	var parts []string
	if config.Host != "" {
		parts = append(parts, "host="+config.Host)
	}
	if config.Port != 0 {
		parts = append(parts, fmt.Sprintf("port=%d", config.Port))
	}
	if config.User != "" {
		parts = append(parts, "user="+config.User)
	}
	if config.Password != "" {
		parts = append(parts, "password="+config.Password)
	}
	if config.DbName != "" {
		parts = append(parts, "dbname="+config.DbName)
	}
	sslMode := config.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts = append(parts, "sslmode="+sslMode)
	return strings.Join(parts, " ")
}
