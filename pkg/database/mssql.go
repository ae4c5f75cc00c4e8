package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/denisenkom/go-mssqldb"

	"github.com/RyanCodeGit/rdsextract/pkg/config"
	"github.com/RyanCodeGit/rdsextract/pkg/table"
)

// MSSQL implements the Database interface for SQL Server
type MSSQL struct {
	creds *config.Credentials
	db    *sql.DB
}

// NewMSSQL creates a new SQL Server database instance
func NewMSSQL(creds *config.Credentials) *MSSQL {
	return &MSSQL{creds: creds}
}

// Connect establishes a connection to the SQL Server instance
func (m *MSSQL) Connect(ctx context.Context) error {
	connStr := fmt.Sprintf(
		"server=%s;port=%s;user id=%s;password=%s;database=%s",
		m.creds.Host,
		m.creds.Port,
		m.creds.User,
		m.creds.Password,
		m.creds.Database,
	)

	db, err := sql.Open("mssql", connStr)
	if err != nil {
		return &ConnectionError{Host: m.creds.Host, Cause: err}
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return &ConnectionError{Host: m.creds.Host, Cause: err}
	}

	m.db = db
	return nil
}

// Close closes the database connection
func (m *MSSQL) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

// FetchTable downloads every row of the named table
func (m *MSSQL) FetchTable(ctx context.Context, name string) (*table.Table, error) {
	if m.db == nil {
		return nil, &ConnectionError{Host: m.creds.Host, Cause: errNotConnected}
	}

	query := fmt.Sprintf("SELECT * FROM %s", quoteMSSQLIdentifier(name))
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}
	defer rows.Close()

	return collectRows(rows, name)
}

// Columns returns the column names of a table in ordinal order
func (m *MSSQL) Columns(ctx context.Context, name string) ([]string, error) {
	if m.db == nil {
		return nil, &ConnectionError{Host: m.creds.Host, Cause: errNotConnected}
	}

	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = @p1
		ORDER BY ordinal_position
	`

	rows, err := m.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, &QueryError{Table: name, Cause: err}
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}

	return columns, nil
}

// RowCount returns the total number of rows in a table
func (m *MSSQL) RowCount(ctx context.Context, name string) (int64, error) {
	if m.db == nil {
		return 0, &ConnectionError{Host: m.creds.Host, Cause: errNotConnected}
	}

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteMSSQLIdentifier(name))
	if err := m.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, &QueryError{Table: name, Cause: err}
	}
	return count, nil
}

// Exec executes a statement without returning rows
func (m *MSSQL) Exec(ctx context.Context, query string, args ...interface{}) error {
	if m.db == nil {
		return &ConnectionError{Host: m.creds.Host, Cause: errNotConnected}
	}

	if _, err := m.db.ExecContext(ctx, query, args...); err != nil {
		return &QueryError{Cause: err}
	}
	return nil
}

// quoteMSSQLIdentifier wraps an identifier in brackets, doubling any closing
// bracket inside it.
func quoteMSSQLIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
