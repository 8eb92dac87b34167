// Package workflow implements the flow/logic of a collection run: scan the
// results directory, extract a record per report file, group the records and
// write the report.
package workflow

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"io"
	"log/slog"

	"simstat/internal/config"
	"simstat/internal/extract"
	"simstat/internal/progress"
	"simstat/internal/stats"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNoData is returned when the scan found no report files to extract.
var ErrNoData = errors.New("no data was extracted")

// FileError records a report file that could not be read.
type FileError struct {
	Path string
	Err  error
}

// Summary describes the outcome of a run.
type Summary struct {
	Output     string
	Groups     int
	Records    int
	FileErrors []FileError
}

// CollectionCommand holds everything a collection run needs.
type CollectionCommand struct {
	Settings  config.Collection
	Extractor *extract.Extractor
	// Out receives operator-facing progress and diagnostics, typically stderr.
	Out io.Writer
}

// Run executes the collection. It returns ErrNoData, without writing anything,
// when no report files were found. Per-file read errors are reported in the
// summary and do not stop the run.
func (cc *CollectionCommand) Run() (summary Summary, err error) {
	run := stats.NewRun()
	defer func() {
		if cc.Settings.MetricsFile == "" {
			return
		}
		run.Finish()
		if mErr := run.WriteTextfile(cc.Settings.MetricsFile); mErr != nil {
			slog.Error("failed to write metrics file", slog.String("error", mErr.Error()))
			fmt.Fprintf(cc.Out, "Warning: %v\n", mErr)
		}
	}()

	stop := configureSignalHandler(cc.Settings.Output)
	defer stop()

	slog.Info("starting scan", slog.String("input", cc.Settings.Input), slog.Any("extensions", cc.Settings.Extensions))
	fmt.Fprintf(cc.Out, "Starting scan in directory: '%s'...\n", cc.Settings.Input)
	statuses := progress.NewMultiStatus(cc.Out)
	collector := &Collector{
		Extractor:  cc.Extractor,
		Extensions: cc.Settings.Extensions,
		Stats:      run,
		Status:     statuses,
	}
	collection, fileErrors, err := collector.Collect(cc.Settings.Input)
	statuses.Finish()
	summary.FileErrors = fileErrors
	for _, fe := range fileErrors {
		fmt.Fprintf(cc.Out, "Error reading file %s: %v\n", fe.Path, fe.Err)
	}
	if err != nil {
		return
	}
	summary.Groups = collection.Len()
	summary.Records = collection.NumRecords()
	run.SetGroups(summary.Groups)
	if summary.Records == 0 {
		slog.Info("no records extracted", slog.String("input", cc.Settings.Input))
		err = ErrNoData
		return
	}

	fmt.Fprintf(cc.Out, "\nProcessing collected data and writing to %s...\n", cc.Settings.Output)
	if err = writeCollection(collection, cc.Settings.Format, cc.Settings.Output, cc.Out); err != nil {
		return
	}
	summary.Output = cc.Settings.Output
	p := message.NewPrinter(language.English) // use printer to get commas at thousands
	fmt.Fprintln(cc.Out, p.Sprintf("Collected %d record(s) into %d sheet(s).", summary.Records, summary.Groups))
	fmt.Fprintf(cc.Out, "\nSuccessfully created %s file: %s\n", cc.Settings.Format, cc.Settings.Output)
	slog.Info("report written", slog.String("output", cc.Settings.Output), slog.Int("groups", summary.Groups), slog.Int("records", summary.Records), slog.Int("file errors", len(fileErrors)))
	return
}
