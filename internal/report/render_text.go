package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"simstat/internal/table"
)

func createTextReport(tables []table.Table) (out []byte, err error) {
	var sb strings.Builder
	for _, t := range tables {
		sb.WriteString(fmt.Sprintf("%s\n", t.Name))
		sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(t.Name)))
		sb.WriteString("\n")
		if len(t.Records) == 0 {
			sb.WriteString(NoDataFound + "\n\n")
			continue
		}
		sb.WriteString(DefaultTextTableRendererFunc(t))
		sb.WriteString("\n")
	}
	out = []byte(sb.String())
	return
}

// DefaultTextTableRendererFunc renders the table with field names as column
// headings across the top and one line per record.
func DefaultTextTableRendererFunc(t table.Table) string {
	var sb strings.Builder
	rows := make([][]string, len(t.Records))
	for i, record := range t.Records {
		values := t.Schema.Row(record)
		rows[i] = make([]string, len(values))
		for j, value := range values {
			rows[i][j] = value.String()
		}
	}
	// find the longest item per column -- can be the field name (column header) or a value
	maxFieldLen := make([]int, len(t.Schema))
	for i, name := range t.Schema {
		// the last column shouldn't occupy more space than the value
		if i == len(t.Schema)-1 {
			continue
		}
		maxFieldLen[i] = utf8.RuneCountInString(name)
		for _, row := range rows {
			maxFieldLen[i] = max(maxFieldLen[i], utf8.RuneCountInString(row[i]))
		}
	}
	columnSpacing := 3
	writeLine := func(cells []string) {
		var line strings.Builder
		for i, cell := range cells {
			line.WriteString(fmt.Sprintf("%-*s", maxFieldLen[i]+columnSpacing, cell))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	writeLine(t.Schema)
	// underline the field names
	underlines := make([]string, len(t.Schema))
	for i, name := range t.Schema {
		underlines[i] = strings.Repeat("-", utf8.RuneCountInString(name))
	}
	writeLine(underlines)
	for _, row := range rows {
		writeLine(row)
	}
	return sb.String()
}
