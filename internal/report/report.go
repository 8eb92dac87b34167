// Package report provides functions to generate reports in various formats such as xlsx, json, txt.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"simstat/internal/table"

	"github.com/pkg/errors"
)

const (
	FormatXlsx = "xlsx"
	FormatJson = "json"
	FormatTxt  = "txt"
)

const NoDataFound = "No data found."

var FormatOptions = []string{FormatXlsx, FormatJson, FormatTxt}

// Create generates a report in the specified format from the given tables.
// Tables are rendered in the order given, one sheet or section per table.
//
// Parameters:
// - format: The desired format of the report (xlsx, json, txt).
// - tables: The tables to render, typically sorted by name.
//
// Returns:
// - out: The generated report as a byte slice.
// - err: An error, if any occurred during report generation.
func Create(format string, tables []table.Table) (out []byte, err error) {
	// make sure every record carries the full schema before rendering
	for _, t := range tables {
		for i, record := range t.Records {
			if err = t.Schema.Validate(record); err != nil {
				return nil, fmt.Errorf("table %s, record %d: %w", t.Name, i, err)
			}
		}
	}
	switch format {
	case FormatXlsx:
		return createXlsxReport(tables)
	case FormatJson:
		return createJsonReport(tables)
	case FormatTxt:
		return createTextReport(tables)
	}
	return nil, fmt.Errorf("expected one of %s, got %s", strings.Join(FormatOptions, ", "), format)
}

const tempFileSuffix = ".tmp"

func tempFilePrefix(path string) string {
	return "." + filepath.Base(path) + "."
}

// TempFiles returns the temporary files that Write may have left next to path,
// e.g., when the process was interrupted before the rename.
func TempFiles(path string) ([]string, error) {
	return filepath.Glob(filepath.Join(filepath.Dir(path), escapeGlob(tempFilePrefix(path))+"*"+tempFileSuffix))
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[\\`, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Write stores the report bytes at path. The bytes are written to a temporary
// file in the same directory and renamed into place, so a failed write never
// leaves a partial report at path.
func Write(reportBytes []byte, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tempFilePrefix(path)+"*"+tempFileSuffix)
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(reportBytes); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to sync %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err = os.Chmod(tmpName, 0644); err != nil { // #nosec G302
		return errors.Wrapf(err, "failed to set permissions on %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to move report into place at %s", path)
	}
	return nil
}
