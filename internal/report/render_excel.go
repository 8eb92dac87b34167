package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bufio"
	"bytes"
	"fmt"
	"unicode/utf8"

	"simstat/internal/table"

	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor = "808080"
	headerFontColor = "FFFFFF"
	headerFontSize  = 12
	// columnPadding is added to the longest rendered value in a column
	columnPadding = 2
)

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

type xlsxStyles struct {
	header int
	label  int
	data   int
}

func newXlsxStyles(f *excelize.File) (styles xlsxStyles, err error) {
	center := &excelize.Alignment{
		Horizontal: "center",
		Vertical:   "center",
	}
	styles.header, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Font: &excelize.Font{
			Bold:  true,
			Color: headerFontColor,
			Size:  headerFontSize,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{headerFillColor},
		},
	})
	if err != nil {
		return
	}
	styles.label, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err != nil {
		return
	}
	styles.data, err = f.NewStyle(&excelize.Style{
		Alignment: center,
	})
	return
}

// renderXlsxTable writes one table to its own sheet: a header row of field
// names followed by one row per record. Column widths fit the longest value.
func renderXlsxTable(t table.Table, f *excelize.File, sheetName string, styles xlsxStyles) error {
	widths := make([]int, len(t.Schema))
	row := 1
	for i, name := range t.Schema {
		col := i + 1
		if err := f.SetCellValue(sheetName, cellName(col, row), name); err != nil {
			return err
		}
		widths[i] = utf8.RuneCountInString(name)
	}
	lastCol := len(t.Schema)
	if err := f.SetCellStyle(sheetName, cellName(1, row), cellName(lastCol, row), styles.header); err != nil {
		return err
	}
	for _, record := range t.Records {
		row++
		for i, value := range t.Schema.Row(record) {
			if value.IsEmpty() {
				continue
			}
			if err := f.SetCellValue(sheetName, cellName(i+1, row), value.Any()); err != nil {
				return err
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(value.String()))
		}
		// empty cells are styled too so the whole row is centered
		if err := f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), styles.label); err != nil {
			return err
		}
		if lastCol > 1 {
			if err := f.SetCellStyle(sheetName, cellName(2, row), cellName(lastCol, row), styles.data); err != nil {
				return err
			}
		}
	}
	for i, width := range widths {
		columnName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, columnName, columnName, float64(width+columnPadding)); err != nil {
			return err
		}
	}
	return nil
}

func createXlsxReport(tables []table.Table) (out []byte, err error) {
	if len(tables) == 0 {
		err = fmt.Errorf("no tables to write")
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	styles, err := newXlsxStyles(f)
	if err != nil {
		err = fmt.Errorf("failed to create xlsx styles: %v", err)
		return
	}
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	sheetNames := SheetNames(names)
	for i, t := range tables {
		sheetName := sheetNames[i]
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sheetName)
		} else {
			_, err = f.NewSheet(sheetName)
		}
		if err != nil {
			err = fmt.Errorf("failed to create sheet %s: %v", sheetName, err)
			return
		}
		if err = renderXlsxTable(t, f, sheetName, styles); err != nil {
			err = fmt.Errorf("failed to render sheet %s: %v", sheetName, err)
			return
		}
	}
	f.SetActiveSheet(0)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	_, err = f.WriteTo(w)
	if err != nil {
		err = fmt.Errorf("failed to write xlsx report to buffer: %v", err)
		return
	}
	if err = w.Flush(); err != nil {
		err = fmt.Errorf("failed to flush xlsx report buffer: %v", err)
		return
	}
	out = buf.Bytes()
	return
}
