// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package extract

import (
	"regexp"

	"simstat/internal/table"
)

// ChampSim field names, in report column order.
const (
	FieldTraceFile             = "Trace File"
	FieldIPC                   = "IPC"
	FieldLLCTotalAccess        = "LLC Total Access"
	FieldLLCTotalHits          = "LLC Total Hits"
	FieldLLCTotalMisses        = "LLC Total Misses"
	FieldL2CTotalMPKI          = "L2C Total MPKI"
	FieldL2CLoadAccess         = "L2C Load Access"
	FieldL2CLoadHit            = "L2C Load Hit"
	FieldL2CLoadMiss           = "L2C Load Miss"
	FieldL2CLoadMPKI           = "L2C Load MPKI"
	FieldL2CDataLoadMPKI       = "L2C Data Load MPKI"
	FieldL2CPrefetchRequested  = "L2C Prefetch Requested"
	FieldL2CPrefetchIssued     = "L2C Prefetch Issued"
	FieldL2CPrefetchUseful     = "L2C Prefetch Useful"
	FieldL2CPrefetchUseless    = "L2C Prefetch Useless"
	FieldL2CUsefulLoadPrefetch = "L2C Useful Load Prefetches"
	FieldL2CTimelyPrefetches   = "L2C Timely Prefetches"
	FieldL2CLatePrefetches     = "L2C Late Prefetches"
	FieldL2CDroppedPrefetches  = "L2C Dropped Prefetches"
	FieldL2CAvgMissLatency     = "L2C Average Miss Latency"
	FieldL2CAccuracy           = "L2C Accuracy"
)

// ChampSimSchema is the fixed column set of a ChampSim statistics report.
var ChampSimSchema = table.Schema{
	FieldTraceFile,
	FieldIPC,
	FieldLLCTotalAccess,
	FieldLLCTotalHits,
	FieldLLCTotalMisses,
	FieldL2CTotalMPKI,
	FieldL2CLoadAccess,
	FieldL2CLoadHit,
	FieldL2CLoadMiss,
	FieldL2CLoadMPKI,
	FieldL2CDataLoadMPKI,
	FieldL2CPrefetchRequested,
	FieldL2CPrefetchIssued,
	FieldL2CPrefetchUseful,
	FieldL2CPrefetchUseless,
	FieldL2CUsefulLoadPrefetch,
	FieldL2CTimelyPrefetches,
	FieldL2CLatePrefetches,
	FieldL2CDroppedPrefetches,
	FieldL2CAvgMissLatency,
	FieldL2CAccuracy,
}

func ints(fields ...string) []Capture {
	captures := make([]Capture, len(fields))
	for i, f := range fields {
		captures[i] = Capture{Field: f, Parse: table.ParseInt}
	}
	return captures
}

func floats(fields ...string) []Capture {
	captures := make([]Capture, len(fields))
	for i, f := range fields {
		captures[i] = Capture{Field: f, Parse: table.ParseFloat}
	}
	return captures
}

// ChampSimRules are the label patterns of a ChampSim report. Each rule is
// searched independently over the whole text; '.' does not cross lines.
var ChampSimRules = []Rule{
	{
		Name:     "ipc",
		Regex:    regexp.MustCompile(`CPU 0 cumulative IPC:\s+([\d.]+)`),
		Captures: floats(FieldIPC),
	},
	{
		Name:     "llc total",
		Regex:    regexp.MustCompile(`LLC TOTAL\s+ACCESS:\s+(\d+)\s+HIT:\s+(\d+)\s+MISS:\s+(\d+)`),
		Captures: ints(FieldLLCTotalAccess, FieldLLCTotalHits, FieldLLCTotalMisses),
	},
	{
		Name:     "l2c total mpki",
		Regex:    regexp.MustCompile(`L2C TOTAL.*?MPKI:\s+([\d.]+)`),
		Captures: floats(FieldL2CTotalMPKI),
	},
	{
		Name:  "l2c load",
		Regex: regexp.MustCompile(`L2C LOAD\s+ACCESS:\s+(\d+)\s+HIT:\s+(\d+)\s+MISS:\s+(\d+).*?MPKI:\s+([\d.]+)`),
		Captures: append(ints(FieldL2CLoadAccess, FieldL2CLoadHit, FieldL2CLoadMiss),
			floats(FieldL2CLoadMPKI)...),
	},
	{
		Name:     "l2c data load mpki",
		Regex:    regexp.MustCompile(`L2C DATA LOAD MPKI:\s+([\d.]+)`),
		Captures: floats(FieldL2CDataLoadMPKI),
	},
	{
		Name:     "l2c average miss latency",
		Regex:    regexp.MustCompile(`L2C AVERAGE MISS LATENCY:\s+([\d.]+)`),
		Captures: floats(FieldL2CAvgMissLatency),
	},
	{
		Name:     "l2c prefetch",
		Regex:    regexp.MustCompile(`L2C PREFETCH\s+REQUESTED:\s+(\d+)\s+ISSUED:\s+(\d+)\s+USEFUL:\s+(\d+)\s+USELESS:\s+(\d+)`),
		Captures: ints(FieldL2CPrefetchRequested, FieldL2CPrefetchIssued, FieldL2CPrefetchUseful, FieldL2CPrefetchUseless),
	},
	{
		Name:     "l2c useful load prefetches",
		Regex:    regexp.MustCompile(`L2C USEFUL LOAD PREFETCHES:\s+(\d+)`),
		Captures: ints(FieldL2CUsefulLoadPrefetch),
	},
	{
		Name:     "l2c prefetch timeliness",
		Regex:    regexp.MustCompile(`L2C TIMELY PREFETCHES:\s+(\d+)\s+LATE PREFETCHES:\s+(\d+)\s+DROPPED PREFETCHES:\s+(\d+)`),
		Captures: ints(FieldL2CTimelyPrefetches, FieldL2CLatePrefetches, FieldL2CDroppedPrefetches),
	},
	{
		// accuracy can be inf or nan when nothing was issued, any token is kept
		Name:     "l2c accuracy",
		Regex:    regexp.MustCompile(`L2C .*? ACCURACY:\s+(\S+)`),
		Captures: []Capture{{Field: FieldL2CAccuracy, Parse: table.ParseFloatOrText}},
	},
}

// NewChampSimExtractor returns an extractor for ChampSim statistics reports.
func NewChampSimExtractor() *Extractor {
	e, err := NewExtractor(ChampSimSchema, FieldTraceFile, ChampSimRules)
	if err != nil {
		panic(err)
	}
	return e
}
