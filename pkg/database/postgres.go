package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/RyanCodeGit/rdsextract/pkg/config"
	"github.com/RyanCodeGit/rdsextract/pkg/table"
)

// Postgres implements the Database interface for PostgreSQL
type Postgres struct {
	creds *config.Credentials
	db    *sql.DB
}

// NewPostgres creates a new PostgreSQL database instance
func NewPostgres(creds *config.Credentials) *Postgres {
	return &Postgres{creds: creds}
}

// Connect establishes a connection to the PostgreSQL server
func (p *Postgres) Connect(ctx context.Context) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.creds.Host,
		p.creds.Port,
		p.creds.User,
		p.creds.Password,
		p.creds.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return &ConnectionError{Host: p.creds.Host, Cause: err}
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return &ConnectionError{Host: p.creds.Host, Cause: err}
	}

	p.db = db
	return nil
}

// Close closes the database connection
func (p *Postgres) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// FetchTable downloads every row of the named table
func (p *Postgres) FetchTable(ctx context.Context, name string) (*table.Table, error) {
	if p.db == nil {
		return nil, &ConnectionError{Host: p.creds.Host, Cause: errNotConnected}
	}

	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(name))
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}
	defer rows.Close()

	return collectRows(rows, name)
}

// Columns returns the column names of a table in ordinal order
func (p *Postgres) Columns(ctx context.Context, name string) ([]string, error) {
	if p.db == nil {
		return nil, &ConnectionError{Host: p.creds.Host, Cause: errNotConnected}
	}

	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = $1
		ORDER BY ordinal_position
	`

	rows, err := p.db.QueryContext(ctx, query, name)
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
func (p *Postgres) RowCount(ctx context.Context, name string) (int64, error) {
	if p.db == nil {
		return 0, &ConnectionError{Host: p.creds.Host, Cause: errNotConnected}
	}

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(name))
	if err := p.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, &QueryError{Table: name, Cause: err}
	}
	return count, nil
}

// Exec executes a statement without returning rows
func (p *Postgres) Exec(ctx context.Context, query string, args ...interface{}) error {
	if p.db == nil {
		return &ConnectionError{Host: p.creds.Host, Cause: errNotConnected}
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return &QueryError{Cause: err}
	}
	return nil
}
