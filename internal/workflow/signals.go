// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package workflow

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"simstat/internal/report"
)

// configureSignalHandler sets up a signal handler to catch SIGINT and SIGTERM
// while a run is in progress. On a signal, the temporary files of a report
// that was being written to outputPath are removed and the process exits, so
// an interrupted run never leaves a file behind.
//
// The returned function stops the handler and must be called when the run ends.
func configureSignalHandler(outputPath string) (stop func()) {
	sigChannel := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-done:
			return
		case sig := <-sigChannel:
			slog.Info("received signal", slog.String("signal", sig.String()))
			removeTempReports(outputPath)
			os.Exit(1)
		}
	}()
	return func() {
		signal.Stop(sigChannel)
		close(done)
	}
}

// removeTempReports deletes leftover temporary report files and returns the
// paths it removed.
func removeTempReports(outputPath string) []string {
	matches, err := report.TempFiles(outputPath)
	if err != nil {
		slog.Error("failed to find temporary report files", slog.String("output", outputPath), slog.String("error", err.Error()))
		return nil
	}
	var removed []string
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			slog.Error("failed to remove temporary report file", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("removed temporary report file", slog.String("path", path))
		removed = append(removed, path)
	}
	return removed
}
