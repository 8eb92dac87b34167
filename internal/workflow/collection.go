// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package workflow

import (
	"fmt"
	"log/slog"

	"simstat/internal/extract"
	"simstat/internal/scan"
	"simstat/internal/stats"
	"simstat/internal/table"
)

// StatusUpdater receives per-group progress.
type StatusUpdater interface {
	AddLabel(label string) error
	Status(label string, status string) error
	Printf(format string, a ...any)
}

// Collector walks a results directory and extracts one record per report file.
type Collector struct {
	Extractor  *extract.Extractor
	Extensions []string
	Stats      *stats.Run    // optional
	Status     StatusUpdater // optional
}

// Collect groups the extracted records by directory. Files that cannot be read
// are skipped and returned as FileErrors. The returned error is set only when
// the walk itself fails, e.g., when root does not exist.
func (c *Collector) Collect(root string) (*table.Collection, []FileError, error) {
	groups, err := scan.Walk(root, c.Extensions)
	if err != nil {
		return nil, nil, err
	}
	collection := table.NewCollection(c.Extractor.Schema())
	if c.Status != nil {
		for _, group := range groups {
			if err := c.Status.AddLabel(group.Name); err != nil {
				// the same group name from two directories, e.g., "a_b" and "a/b"
				slog.Debug("group already has a status line", slog.String("group", group.Name))
			}
		}
	}
	var fileErrors []FileError
	for _, group := range groups {
		slog.Info("processing directory", slog.String("group", group.Name), slog.String("dir", group.Dir), slog.Int("files", len(group.Files)))
		if c.Status != nil {
			c.Status.Printf("Processing directory for sheet: %s\n", group.Name)
		}
		failed := 0
		for i, path := range group.Files {
			c.updateStatus(group.Name, fmt.Sprintf("reading %d/%d", i+1, len(group.Files)))
			if c.Stats != nil {
				c.Stats.FileScanned()
			}
			record, err := c.Extractor.ExtractFile(path)
			if err != nil {
				slog.Error("failed to read report file", slog.String("path", path), slog.String("error", err.Error()))
				fileErrors = append(fileErrors, FileError{Path: path, Err: err})
				failed++
				if c.Stats != nil {
					c.Stats.FileFailed()
				}
				continue
			}
			if err := collection.Add(group.Name, record); err != nil {
				return nil, fileErrors, err
			}
			if c.Stats != nil {
				c.Stats.RecordAdded(group.Name)
			}
		}
		status := fmt.Sprintf("%d record(s)", len(group.Files)-failed)
		if failed > 0 {
			status += fmt.Sprintf(", %d unreadable", failed)
		}
		c.updateStatus(group.Name, status)
	}
	return collection, fileErrors, nil
}

func (c *Collector) updateStatus(label, status string) {
	if c.Status == nil {
		return
	}
	if err := c.Status.Status(label, status); err != nil {
		slog.Debug("status update failed", slog.String("label", label), slog.String("error", err.Error()))
	}
}
