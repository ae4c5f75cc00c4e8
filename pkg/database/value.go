package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/RyanCodeGit/rdsextract/pkg/table"
)

// collectRows materializes an entire result set into a Table. Column names
// come from the result set itself, so SELECT * keeps the server's column
// ordering.
func collectRows(rows *sql.Rows, name string) (*table.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}

	t := table.New(columns...)
	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, &QueryError{Table: name, Cause: err}
		}

		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		t.Rows = append(t.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Table: name, Cause: err}
	}

	return t, nil
}

// formatValue renders a driver value as a cell string. NULL becomes the
// empty string; floats keep their shortest decimal form so exported numbers
// survive a round trip through a flat file.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
