// Package mssql adapts a SQL Server query's result set into a
// rowsource.Source, mirroring the teacher's database/mssql/database.go
// layout and its NewDatabase(config) constructor, renamed to NewSource.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb"

	"github.com/killzin666/ozone/rowsource"
)

// NewSource opens a SQL Server connection per config and runs
// config.Query, returning a rowsource.Source over the result set.
func NewSource(ctx context.Context, config rowsource.Config) (rowsource.Source, error) {
	db, err := sql.Open("sqlserver", dsn(config))
	if err != nil {
		return nil, fmt.Errorf("rowsource/mssql: opening connection: %w", err)
	}
	return rowsource.Open(ctx, db, config.Query)
}

func dsn(config rowsource.Config) string {
	query := url.Values{}
	if config.DbName != "" {
		query.Set("database", config.DbName)
	}
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(config.User, config.Password),
		Host:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}
