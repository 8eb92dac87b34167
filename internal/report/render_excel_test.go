package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"strings"
	"testing"

	"simstat/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testSchema = table.Schema{"Trace File", "IPC", "LLC Total Access", "L2C Accuracy"}

func testRecord(file string, ipc float64, access int64, accuracy table.Value) table.Record {
	record := table.NewRecord(testSchema)
	record["Trace File"] = table.TextValue(file)
	record["IPC"] = table.FloatValue(ipc)
	record["LLC Total Access"] = table.IntValue(access)
	record["L2C Accuracy"] = accuracy
	return record
}

func testTables() []table.Table {
	sparse := table.NewRecord(testSchema)
	sparse["Trace File"] = table.TextValue("sparse.txt")
	return []table.Table{
		{
			Name:   "A",
			Schema: testSchema,
			Records: []table.Record{
				testRecord("a1.txt", 0.807998, 801232, table.FloatValue(62.5)),
				testRecord("a2.txt", 1.5, 42, table.TextValue("inf")),
			},
		},
		{
			Name:    "B",
			Schema:  testSchema,
			Records: []table.Record{sparse},
		},
	}
}

func openXlsx(t *testing.T, out []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestCreateXlsxSheetsAndRows(t *testing.T) {
	out, err := Create(FormatXlsx, testTables())
	require.NoError(t, err)
	f := openXlsx(t, out)

	assert.Equal(t, []string{"A", "B"}, f.GetSheetList())

	rows, err := f.GetRows("A")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string(testSchema), rows[0])
	assert.Equal(t, []string{"a1.txt", "0.807998", "801232", "62.5"}, rows[1])
	assert.Equal(t, []string{"a2.txt", "1.5", "42", "inf"}, rows[2])

	rows, err = f.GetRows("B")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// empty values leave empty cells
	require.NotEmpty(t, rows[1])
	assert.Equal(t, "sparse.txt", rows[1][0])
	for _, cell := range rows[1][1:] {
		assert.Equal(t, "", cell)
	}
	v, err := f.GetCellValue("B", "B2")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestCreateXlsxStyles(t *testing.T) {
	out, err := Create(FormatXlsx, testTables())
	require.NoError(t, err)
	f := openXlsx(t, out)

	style := func(cell string) *excelize.Style {
		idx, err := f.GetCellStyle("A", cell)
		require.NoError(t, err)
		s, err := f.GetStyle(idx)
		require.NoError(t, err)
		return s
	}

	header := style("B1")
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	assert.True(t, strings.HasSuffix(strings.ToUpper(header.Font.Color), headerFontColor))
	assert.Equal(t, "pattern", header.Fill.Type)
	require.NotEmpty(t, header.Fill.Color)
	assert.True(t, strings.HasSuffix(strings.ToUpper(header.Fill.Color[0]), headerFillColor))
	require.NotNil(t, header.Alignment)
	assert.Equal(t, "center", header.Alignment.Horizontal)
	assert.Equal(t, "center", header.Alignment.Vertical)

	label := style("A2")
	require.NotNil(t, label.Font)
	assert.True(t, label.Font.Bold)
	require.NotNil(t, label.Alignment)
	assert.Equal(t, "center", label.Alignment.Horizontal)

	data := style("C3")
	if data.Font != nil {
		assert.False(t, data.Font.Bold)
	}
	require.NotNil(t, data.Alignment)
	assert.Equal(t, "center", data.Alignment.Horizontal)
	assert.Equal(t, "center", data.Alignment.Vertical)
}

func TestCreateXlsxColumnWidths(t *testing.T) {
	out, err := Create(FormatXlsx, testTables())
	require.NoError(t, err)
	f := openXlsx(t, out)

	tests := []struct {
		col  string
		want float64
	}{
		{"A", float64(len("Trace File") + columnPadding)},       // header is the longest
		{"B", float64(len("0.807998") + columnPadding)},         // value is the longest
		{"C", float64(len("LLC Total Access") + columnPadding)}, // header is the longest
		{"D", float64(len("L2C Accuracy") + columnPadding)},
	}
	for _, tt := range tests {
		width, err := f.GetColWidth("A", tt.col)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, width, 0.01, tt.col)
	}
}

func TestCreateXlsxNoTables(t *testing.T) {
	_, err := Create(FormatXlsx, nil)
	assert.Error(t, err)
}

func TestCreateRejectsIncompleteRecord(t *testing.T) {
	tables := testTables()
	delete(tables[0].Records[0], "IPC")
	_, err := Create(FormatXlsx, tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IPC")
}

func TestCreateUnknownFormat(t *testing.T) {
	_, err := Create("html", testTables())
	assert.Error(t, err)
}

func TestCreateXlsxLongSheetNames(t *testing.T) {
	long := strings.Repeat("prefetcher_", 4)
	tables := []table.Table{
		{Name: long + "a", Schema: testSchema, Records: []table.Record{testRecord("x.txt", 1, 1, table.Value{})}},
		{Name: long + "b", Schema: testSchema, Records: []table.Record{testRecord("y.txt", 2, 2, table.Value{})}},
	}
	out, err := Create(FormatXlsx, tables)
	require.NoError(t, err)
	f := openXlsx(t, out)
	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	assert.NotEqual(t, sheets[0], sheets[1])
	for _, s := range sheets {
		assert.LessOrEqual(t, len([]rune(s)), maxSheetNameLength)
	}
}

func TestCreateXlsxApostropheAtTruncation(t *testing.T) {
	name := strings.Repeat("a", 30) + "'b"
	tables := []table.Table{
		{Name: name, Schema: testSchema, Records: []table.Record{testRecord("x.txt", 1, 1, table.Value{})}},
		{Name: name + "c", Schema: testSchema, Records: []table.Record{testRecord("y.txt", 2, 2, table.Value{})}},
	}
	out, err := Create(FormatXlsx, tables)
	require.NoError(t, err)
	f := openXlsx(t, out)
	assert.Equal(t, []string{strings.Repeat("a", 30), strings.Repeat("a", 29) + "~2"}, f.GetSheetList())
	rows, err := f.GetRows(strings.Repeat("a", 30))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "x.txt", rows[1][0])
}

func TestCreateXlsxDeterministicContent(t *testing.T) {
	first, err := Create(FormatXlsx, testTables())
	require.NoError(t, err)
	second, err := Create(FormatXlsx, testTables())
	require.NoError(t, err)
	f1 := openXlsx(t, first)
	f2 := openXlsx(t, second)
	require.Equal(t, f1.GetSheetList(), f2.GetSheetList())
	for _, sheet := range f1.GetSheetList() {
		rows1, err := f1.GetRows(sheet)
		require.NoError(t, err)
		rows2, err := f2.GetRows(sheet)
		require.NoError(t, err)
		assert.Equal(t, rows1, rows2, sheet)
	}
}
