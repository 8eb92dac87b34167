package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"encoding/json"

	"simstat/internal/table"
)

func createJsonReport(tables []table.Table) (out []byte, err error) {
	type outTable struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	oReport := make([]outTable, 0, len(tables))
	for _, t := range tables {
		oTable := outTable{
			Name:    t.Name,
			Columns: t.Schema,
			Rows:    make([][]any, 0, len(t.Records)),
		}
		for _, record := range t.Records {
			row := t.Schema.Row(record)
			oRow := make([]any, len(row))
			for i, value := range row {
				oRow[i] = value.Any()
			}
			oTable.Rows = append(oTable.Rows, oRow)
		}
		oReport = append(oReport, oTable)
	}
	return json.MarshalIndent(oReport, "", " ")
}
