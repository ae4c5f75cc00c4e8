package database

import (
	"errors"
	"fmt"
)

// errNotConnected is the cause reported when an operation runs before a
// successful Connect.
var errNotConnected = errors.New("not connected")

// ConnectionError reports a failure to reach or authenticate with the
// database server.
type ConnectionError struct {
	Host  string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s: %v", e.Host, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// QueryError reports a query the server rejected, including queries against
// tables that do not exist.
type QueryError struct {
	Table string
	Cause error
}

func (e *QueryError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("query error: %v", e.Cause)
	}
	return fmt.Sprintf("query error: table %s: %v", e.Table, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
