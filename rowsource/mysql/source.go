// Package mysql adapts a MySQL query's result set into a rowsource.Source,
// mirroring the teacher's database/mysql/database.go layout and its
// NewDatabase(config) constructor, renamed to NewSource.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"

	"github.com/killzin666/ozone/rowsource"
)

// NewSource opens a MySQL connection per config and runs config.Query,
// returning a rowsource.Source over the result set.
func NewSource(ctx context.Context, config rowsource.Config) (rowsource.Source, error) {
	db, err := sql.Open("mysql", dsn(config))
	if err != nil {
		return nil, fmt.Errorf("rowsource/mysql: opening connection: %w", err)
	}
	return rowsource.Open(ctx, db, config.Query)
}

func dsn(config rowsource.Config) string {
	c := driver.NewConfig()
	c.User = config.User
	c.Passwd = config.Password
	c.DBName = config.DbName
	if config.Socket != "" {
		c.Net = "unix"
		c.Addr = config.Socket
	} else {
		c.Net = "tcp"
		host := config.Host
		if host == "" {
			host = "127.0.0.1"
		}
		port := config.Port
		if port == 0 {
			port = 3306
		}
		c.Addr = fmt.Sprintf("%s:%d", host, port)
	}
	return c.FormatDSN()
}
