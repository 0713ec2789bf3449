package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goscwb/internal/scwb"
)

const sampleCSV = `joint_id,sum_mc,sum_mb,level
J1,100,50,L2
J2,60,60,L2
J3,100,0,L3
`

func TestReadCSV_Sample(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"joint_id", "sum_mc", "sum_mb", "level"}, tbl.Header)
	assert.Equal(t, 3, tbl.Len())

	want := []JointRecord{
		{ID: "J1", SumMC: 100, SumMB: 50},
		{ID: "J2", SumMC: 60, SumMB: 60},
		{ID: "J3", SumMC: 100, SumMB: 0},
	}
	if diff := cmp.Diff(want, tbl.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"J3", "100", "0", "L3"}, tbl.Rows[2])
}

func TestReadCSV_KeepsRawValues(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("joint_id,sum_mc,sum_mb\n J-01 , 100 ,1e2\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{" J-01 ", " 100 ", "1e2"}, tbl.Rows[0])
	assert.Equal(t, JointRecord{ID: " J-01 ", SumMC: 100, SumMB: 100}, tbl.Records[0])
}

func TestReadCSV_ColumnOrderAndBOM(t *testing.T) {
	in := "\ufeffsum_mb, joint_id ,sum_mc\n50,007,100\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"sum_mb", "joint_id", "sum_mc"}, tbl.Header)
	assert.Equal(t, JointRecord{ID: "007", SumMC: 100, SumMB: 50}, tbl.Records[0])
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("joint_id,sum_mc,sum_mb\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Records)
}

func TestReadCSV_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "missing header row"},
		{"missing column", "joint_id,sum_mc\nJ1,100\n", "missing required column(s): sum_mb"},
		{"duplicate column", "joint_id,sum_mc,sum_mb,sum_mc\nJ1,1,2,3\n", `duplicate column "sum_mc"`},
		{"empty column name", "joint_id,,sum_mc,sum_mb\nJ1,x,1,2\n", "column 2 has an empty name"},
		{"non-numeric", "joint_id,sum_mc,sum_mb\nJ1,100,50\nJ2,abc,50\n", `row 3: column sum_mc: non-numeric value "abc"`},
		{"digit separator", "joint_id,sum_mc,sum_mb\nJ1,1_0,50\n", `row 2: column sum_mc: non-numeric value "1_0"`},
		{"hex float", "joint_id,sum_mc,sum_mb\nJ1,100,0x1p3\n", `row 2: column sum_mb: non-numeric value "0x1p3"`},
		{"signed hex", "joint_id,sum_mc,sum_mb\nJ1,-0X10,50\n", `row 2: column sum_mc: non-numeric value "-0X10"`},
		{"empty capacity", "joint_id,sum_mc,sum_mb\nJ1,100,\n", "row 2: column sum_mb: empty value"},
		{"short row", "joint_id,sum_mc,sum_mb\nJ1,100\n", "row 2: expected 3 fields, got 2"},
		{"long row", "joint_id,sum_mc,sum_mb\nJ1,100,50,9\n", "row 2: expected 3 fields, got 4"},
		{"bad quoting", "joint_id,sum_mc,sum_mb\n\"J1,100,50\n", "extraneous"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t, sampleCSV, buf.String())
}

func TestWriteCSV_QuotesFields(t *testing.T) {
	tbl := &Table{
		Header: []string{"joint_id", "message"},
		Rows:   [][]string{{"J,1", `say "hi"`}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.Equal(t, "joint_id,message\n\"J,1\",\"say \"\"hi\"\"\"\n", buf.String())
}

func TestXLSX_RoundTrip(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, tbl))

	got, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	if diff := cmp.Diff(tbl, got); diff != "" {
		t.Errorf("xlsx round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestXLSX_PadsTrailingEmptyCells(t *testing.T) {
	tbl := &Table{
		Header: []string{"joint_id", "sum_mc", "sum_mb", "note"},
		Rows:   [][]string{{"J1", "10", "5", ""}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, tbl))

	got, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, []string{"J1", "10", "5", ""}, got.Rows[0])
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("joint_id,sum_mc,sum_mb\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.True(t, scwb.IsKind(err, scwb.KindMissingInput))
	assert.ErrorIs(t, err, scwb.ErrMissingInputFile)
	assert.Contains(t, err.Error(), path)
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,mc,mb\n1,2,3\n"), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, scwb.ErrMalformedInput)
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, scwb.ErrMalformedInput)
}

func TestWriteFile_ByExtension(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.csv", "out.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, tbl))

		got, err := ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, tbl.Rows, got.Rows, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := WriteFile(path, &Table{Header: []string{"joint_id"}})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWithout(t *testing.T) {
	tbl := &Table{
		Header: []string{"joint_id", "ratio", "sum_mc", "sum_mb", "message"},
		Rows:   [][]string{{"J1", "9", "1", "2", "old"}},
	}
	got := tbl.Without(ResultColumns...)
	assert.Equal(t, []string{"joint_id", "sum_mc", "sum_mb"}, got.Header)
	assert.Equal(t, [][]string{{"J1", "1", "2"}}, got.Rows)

	// the source table is untouched
	assert.Len(t, tbl.Header, 5)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatXLSX, FormatOf("data/joints.XLSX"))
	assert.Equal(t, FormatCSV, FormatOf("data/joints.csv"))
	assert.Equal(t, FormatCSV, FormatOf("data/joints"))
}
