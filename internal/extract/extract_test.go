// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"simstat/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValsFromRegexSubmatch(t *testing.T) {
	re := regexp.MustCompile(`HIT:\s+(\d+)\s+MISS:\s+(\d+)`)
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "single match",
			output: "LLC TOTAL ACCESS: 10 HIT: 7 MISS: 3",
			want:   []string{"7", "3"},
		},
		{
			name:   "first match wins",
			output: "HIT: 1 MISS: 2\nHIT: 3 MISS: 4",
			want:   []string{"1", "2"},
		},
		{
			name:   "no match",
			output: "nothing to see here",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValsFromRegexSubmatch(tt.output, re))
		})
	}
}

func TestNewExtractorValidation(t *testing.T) {
	schema := table.Schema{"Name", "Count"}
	re := regexp.MustCompile(`COUNT: (\d+)`)

	_, err := NewExtractor(schema, "Missing", nil)
	assert.Error(t, err)

	_, err = NewExtractor(schema, "Name", []Rule{{Name: "bad field", Regex: re, Captures: ints("Other")}})
	assert.Error(t, err)

	_, err = NewExtractor(schema, "Name", []Rule{{Name: "too few groups", Regex: re, Captures: ints("Count", "Count")}})
	assert.Error(t, err)

	e, err := NewExtractor(schema, "Name", []Rule{{Name: "count", Regex: re, Captures: ints("Count")}})
	require.NoError(t, err)
	record := e.Extract("run.txt", "COUNT: 12")
	assert.Equal(t, "run.txt", record["Name"].String())
	assert.Equal(t, table.IntValue(12), record["Count"])
}

func TestChampSimRulesMatchSchema(t *testing.T) {
	// every rule compiles against the schema and every non-label field has exactly one rule
	seen := map[string]int{}
	for _, rule := range ChampSimRules {
		for _, c := range rule.Captures {
			seen[c.Field]++
		}
	}
	for _, name := range ChampSimSchema[1:] {
		assert.Equal(t, 1, seen[name], name)
	}
	assert.NotPanics(t, func() { NewChampSimExtractor() })
}

func writeReport(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "bfs-3.txt", champSimReport)

	record, err := NewChampSimExtractor().ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bfs-3.txt", record[FieldTraceFile].String())
	assert.NoError(t, ChampSimSchema.Validate(record))

	_, err = NewChampSimExtractor().ExtractFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.True(t, os.IsNotExist(errorsCause(err)))
}

// errorsCause unwraps to the innermost error.
func errorsCause(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}
