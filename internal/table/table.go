// Package table reads and writes joint tables: a header row naming the columns
// followed by one row per joint. Input tables must carry the joint_id, sum_mc
// and sum_mb columns; any other columns are carried through untouched.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names of the joint schema
const (
	ColJointID = "joint_id"
	ColSumMC   = "sum_mc"
	ColSumMB   = "sum_mb"

	ColRatio   = "ratio"
	ColIsSafe  = "is_safe"
	ColMessage = "message"
)

// RequiredColumns must be present in every input header
var RequiredColumns = []string{ColJointID, ColSumMC, ColSumMB}

// ResultColumns are appended by the batch processor
var ResultColumns = []string{ColRatio, ColIsSafe, ColMessage}

// JointRecord is one parsed input row
type JointRecord struct {
	ID    string  // joint identifier, verbatim
	SumMC float64 // ΣMnc (kN-m)
	SumMB float64 // ΣMnb (kN-m)
}

// Table is a header plus raw string rows. Records is filled for input tables
// and is parallel to Rows.
type Table struct {
	Header  []string
	Rows    [][]string
	Records []JointRecord
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column in the header, or -1
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Without returns a copy of the table with the named columns removed
func (t *Table) Without(names ...string) *Table {
	drop := make(map[int]bool)
	for _, n := range names {
		if i := t.Index(n); i >= 0 {
			drop[i] = true
		}
	}

	out := &Table{
		Header:  keep(t.Header, drop),
		Rows:    make([][]string, len(t.Rows)),
		Records: t.Records,
	}
	for i, row := range t.Rows {
		out.Rows[i] = keep(row, drop)
	}
	return out
}

func keep(row []string, drop map[int]bool) []string {
	out := make([]string, 0, len(row))
	for i, v := range row {
		if !drop[i] {
			out = append(out, v)
		}
	}
	return out
}

// schema holds the column positions of the required fields
type schema struct {
	id, mc, mb int
	width      int
}

// normalizeHeader trims cell padding and a leading byte order mark
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func checkHeader(header []string) (schema, error) {
	seen := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			return schema{}, fmt.Errorf("column %d has an empty name", i+1)
		}
		if j, dup := seen[h]; dup {
			return schema{}, fmt.Errorf("duplicate column %q (columns %d and %d)", h, j+1, i+1)
		}
		seen[h] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := seen[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return schema{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return schema{
		id:    seen[ColJointID],
		mc:    seen[ColSumMC],
		mb:    seen[ColSumMB],
		width: len(header),
	}, nil
}

// parseRecord converts a raw row to a JointRecord. line is the 1-based line
// or sheet row number in the source, used in messages.
func (s schema) parseRecord(row []string, line int) (JointRecord, error) {
	if len(row) != s.width {
		return JointRecord{}, fmt.Errorf("row %d: expected %d fields, got %d", line, s.width, len(row))
	}

	mc, err := parseCapacity(row[s.mc])
	if err != nil {
		return JointRecord{}, fmt.Errorf("row %d: column %s: %w", line, ColSumMC, err)
	}
	mb, err := parseCapacity(row[s.mb])
	if err != nil {
		return JointRecord{}, fmt.Errorf("row %d: column %s: %w", line, ColSumMB, err)
	}

	return JointRecord{ID: row[s.id], SumMC: mc, SumMB: mb}, nil
}

func parseCapacity(raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("empty value")
	}
	// ParseFloat also takes Go literal forms (1_000, 0x1p3); plain decimals only.
	if strings.Contains(v, "_") || isHex(v) {
		return 0, fmt.Errorf("non-numeric value %q", raw)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", raw)
	}
	return f, nil
}

func isHex(v string) bool {
	v = strings.TrimLeft(v, "+-")
	return len(v) > 1 && v[0] == '0' && (v[1] == 'x' || v[1] == 'X')
}

// build validates header and rows and returns the parsed table.
// lines holds the source line number of each row.
func build(header []string, rows [][]string, lines []int) (*Table, error) {
	header = normalizeHeader(header)
	s, err := checkHeader(header)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Header:  header,
		Rows:    make([][]string, 0, len(rows)),
		Records: make([]JointRecord, 0, len(rows)),
	}
	for i, row := range rows {
		rec, err := s.parseRecord(row, lines[i])
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
		t.Records = append(t.Records, rec)
	}
	return t, nil
}
