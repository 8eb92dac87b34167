// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package stats counts what a collection run did and can export the counts
// in the Prometheus text format, e.g., for a node exporter textfile collector.
package stats

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const promMetricPrefix = "simstat_"

// Run holds the counters for one collection run.
type Run struct {
	registry     *prometheus.Registry
	filesScanned prometheus.Counter
	filesFailed  prometheus.Counter
	records      *prometheus.CounterVec
	groups       prometheus.Gauge
	duration     prometheus.Gauge
	start        time.Time
}

// NewRun creates the counters in a private registry so that repeated runs in
// one process do not collide.
func NewRun() *Run {
	r := &Run{
		registry: prometheus.NewRegistry(),
		filesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: promMetricPrefix + "files_scanned_total",
			Help: "Report files found in the results directory",
		}),
		filesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: promMetricPrefix + "files_failed_total",
			Help: "Report files that could not be read",
		}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: promMetricPrefix + "records_total",
			Help: "Records extracted, by group",
		}, []string{"group"}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: promMetricPrefix + "groups",
			Help: "Groups (sheets) in the report",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: promMetricPrefix + "run_duration_seconds",
			Help: "Wall time of the collection run",
		}),
		start: time.Now(),
	}
	r.registry.MustRegister(r.filesScanned, r.filesFailed, r.records, r.groups, r.duration)
	return r
}

// FileScanned counts a report file found by the walk.
func (r *Run) FileScanned() {
	r.filesScanned.Inc()
}

// FileFailed counts a report file that was skipped because it could not be read.
func (r *Run) FileFailed() {
	r.filesFailed.Inc()
}

// RecordAdded counts a record extracted for group.
func (r *Run) RecordAdded(group string) {
	r.records.WithLabelValues(group).Inc()
}

// SetGroups records the number of groups in the report.
func (r *Run) SetGroups(n int) {
	r.groups.Set(float64(n))
}

// Finish records the elapsed run time.
func (r *Run) Finish() {
	r.duration.Set(time.Since(r.start).Seconds())
}

// Registry returns the registry holding the run's metrics.
func (r *Run) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the run's metrics to path in the Prometheus text format.
// The file is written atomically.
func (r *Run) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry()); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
