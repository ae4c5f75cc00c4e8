package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IOError reports a failed read or write of a flat file.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// FormatError reports a structurally invalid flat file.
type FormatError struct {
	Path  string
	Cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s: %v", e.Path, e.Cause)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// Export writes t to a comma-delimited UTF-8 file at path, column names as
// the header line, one row per line. The data is written to a temporary
// file in the destination directory and renamed into place, so a failed
// export leaves nothing readable at path.
func Export(t *Table, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Path: path, Cause: err}
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writeRecord(writer, tmp, t.Columns); err != nil {
		tmp.Close()
		return &IOError{Path: path, Cause: err}
	}
	for _, row := range t.Rows {
		if err := writeRecord(writer, tmp, row); err != nil {
			tmp.Close()
			return &IOError{Path: path, Cause: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return &IOError{Path: path, Cause: err}
	}

	if err := tmp.Close(); err != nil {
		return &IOError{Path: path, Cause: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Path: path, Cause: err}
	}
	return nil
}

// writeRecord writes one record through the csv writer. A record holding a
// single empty field would come out as a blank line, which csv.Reader skips
// silently on the way back in; quote it explicitly so the row survives the
// round trip.
func writeRecord(w *csv.Writer, file *os.File, record []string) error {
	if len(record) == 1 && record[0] == "" {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		_, err := file.WriteString("\"\"\n")
		return err
	}
	return w.Write(record)
}

// Import reads a delimited flat file written by Export. The first line is
// the header; every following line must have the same number of fields.
// Cells are kept as strings; numeric-looking values are not parsed.
func Import(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &FormatError{Path: path, Cause: errors.New("missing header line")}
		}
		return nil, classifyReadError(path, err)
	}

	t := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(path, err)
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// classifyReadError maps csv parse failures (ragged rows, bad quoting) to
// FormatError and everything else to IOError.
func classifyReadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &FormatError{Path: path, Cause: err}
	}
	return &IOError{Path: path, Cause: err}
}
