package table

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goscwb/internal/scwb"
)

// Format is a table file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks the format from the file extension. Anything that is not
// a workbook is read as CSV.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// ReadFile opens and parses a joint table. A path that does not exist yields a
// missing input file error; every other failure is malformed input.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, scwb.Missing("table.read_file", path, err)
		}
		return nil, scwb.Malformed("table.read_file", path, err)
	}
	defer f.Close()

	var t *Table
	switch FormatOf(path) {
	case FormatXLSX:
		t, err = ReadXLSX(f)
	default:
		t, err = ReadCSV(f)
	}
	if err != nil {
		return nil, scwb.Malformed("table.read_file", path, err)
	}
	return t, nil
}

// WriteFile writes t to path in the format implied by its extension. The
// table is written to a temporary file in the same directory and renamed into
// place, so a failed write leaves any previous file untouched.
func WriteFile(path string, t *Table) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp, FormatOf(path), t); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}

func write(w io.Writer, format Format, t *Table) error {
	if format == FormatXLSX {
		return WriteXLSX(w, t)
	}
	return WriteCSV(w, t)
}
