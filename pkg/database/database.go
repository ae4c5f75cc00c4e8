// Package database connects to a remote relational database and downloads
// whole tables into memory.
package database

import (
	"context"
	"fmt"

	"github.com/RyanCodeGit/rdsextract/pkg/config"
	"github.com/RyanCodeGit/rdsextract/pkg/table"
)

// Database defines the interface for database operations
type Database interface {
	// Connect opens a network connection and verifies it with a ping
	Connect(ctx context.Context) error

	// Close closes the database connection
	Close() error

	// FetchTable retrieves every row and column of the named table; the
	// full result set is materialized in memory before it returns
	FetchTable(ctx context.Context, name string) (*table.Table, error)

	// Columns returns the column names of a table in ordinal order
	Columns(ctx context.Context, name string) ([]string, error)

	// RowCount returns the total number of rows in a table
	RowCount(ctx context.Context, name string) (int64, error)

	// Exec executes a statement without returning rows
	Exec(ctx context.Context, query string, args ...interface{}) error
}

// New creates a database instance for the given driver name
func New(driver string, creds *config.Credentials) (Database, error) {
	switch driver {
	case "postgres":
		return NewPostgres(creds), nil
	case "mssql":
		return NewMSSQL(creds), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}
}
