package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simstat/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"A", "A"},
		{"ip_stride_4core", "ip_stride_4core"},
		{"bad[name]:*?/\\", "bad_name______"},
		{"'quoted'", "quoted"},
		{"", "Sheet"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
		{strings.Repeat("a", 30) + "'b", strings.Repeat("a", 30)},
		{"''", "Sheet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SheetName(tt.name))
		})
	}
}

func TestSheetNamesUnique(t *testing.T) {
	long := strings.Repeat("y", 35)
	got := SheetNames([]string{long + "1", long + "2", "a", "A", "b"})
	assert.Equal(t, strings.Repeat("y", 31), got[0])
	assert.Equal(t, strings.Repeat("y", 29)+"~2", got[1])
	assert.Equal(t, "a", got[2])
	assert.Equal(t, "A~2", got[3])
	assert.Equal(t, "b", got[4])

	quoted := strings.Repeat("q", 30) + "'"
	got = SheetNames([]string{quoted + "1", quoted + "2"})
	assert.Equal(t, strings.Repeat("q", 30), got[0])
	assert.Equal(t, strings.Repeat("q", 29)+"~2", got[1])
}

func TestCreateJsonReport(t *testing.T) {
	out, err := Create(FormatJson, testTables())
	require.NoError(t, err)
	var got []struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []string(testSchema), got[0].Columns)
	require.Len(t, got[0].Rows, 2)
	assert.Equal(t, []any{"a1.txt", 0.807998, float64(801232), 62.5}, got[0].Rows[0])
	assert.Equal(t, "inf", got[0].Rows[1][3])
	assert.Equal(t, []any{"sparse.txt", nil, nil, nil}, got[1].Rows[0])
}

func TestCreateTextReport(t *testing.T) {
	out, err := Create(FormatTxt, testTables())
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "A\n=\n"))
	assert.Contains(t, text, "Trace File")
	assert.Contains(t, text, "a1.txt")
	assert.Contains(t, text, "inf")
	assert.Contains(t, text, "B\n=\n")
	lines := strings.Split(text, "\n")
	// header, underline, then rows line up on the same column offsets
	assert.Equal(t, strings.Index(lines[2], "IPC"), strings.Index(lines[4], "0.807998"))

	out, err = Create(FormatTxt, []table.Table{{Name: "Empty", Schema: testSchema}})
	require.NoError(t, err)
	assert.Contains(t, string(out), NoDataFound)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collected_data.xlsx")
	require.NoError(t, Write([]byte("first"), path))
	require.NoError(t, Write([]byte("second"), path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	err := Write([]byte("data"), path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
