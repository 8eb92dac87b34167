package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// maxSheetNameLength is the longest sheet name a workbook accepts.
const maxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// SheetName maps a table name to a valid sheet name.
func SheetName(name string) string {
	name = truncateRunes(sheetNameReplacer.Replace(name), maxSheetNameLength)
	// leading or trailing apostrophes are rejected, trim after truncating
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	return name
}

// SheetNames maps table names to unique, valid sheet names. Names that collide
// after sanitizing get a "~N" suffix. Comparison is case insensitive.
func SheetNames(names []string) []string {
	used := mapset.NewThreadUnsafeSet[string]()
	sheetNames := make([]string, len(names))
	for i, name := range names {
		base := SheetName(name)
		candidate := base
		for n := 2; used.Contains(strings.ToLower(candidate)); n++ {
			suffix := "~" + strconv.Itoa(n)
			candidate = truncateRunes(base, maxSheetNameLength-len(suffix)) + suffix
		}
		used.Add(strings.ToLower(candidate))
		sheetNames[i] = candidate
	}
	return sheetNames
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
