// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package workflow

import (
	"fmt"
	"io"
	"log/slog"

	"simstat/internal/report"
	"simstat/internal/table"

	"github.com/pkg/errors"
)

// writeCollection renders the collection in the given format and writes it to
// outputPath in a single write.
func writeCollection(collection *table.Collection, format string, outputPath string, out io.Writer) error {
	tables := collection.Tables()
	if format == report.FormatXlsx {
		names := make([]string, len(tables))
		for i, t := range tables {
			names[i] = t.Name
		}
		for _, sheetName := range report.SheetNames(names) {
			fmt.Fprintf(out, "Writing sheet: %s\n", sheetName)
		}
	}
	reportBytes, err := report.Create(format, tables)
	if err != nil {
		err = errors.Wrap(err, "failed to create report")
		slog.Error(err.Error())
		return err
	}
	if err = report.Write(reportBytes, outputPath); err != nil {
		err = errors.Wrap(err, "failed to write report")
		slog.Error(err.Error())
		return err
	}
	return nil
}
