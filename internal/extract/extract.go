// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package extract provides helper functions for extracting metric values from
// simulator report text to populate table records.
package extract

import (
	"os"
	"path/filepath"
	"regexp"

	"simstat/internal/table"

	"github.com/pkg/errors"
)

// ParseFunc converts a captured token into a value.
type ParseFunc func(string) table.Value

// Capture binds one regex capture group to a record field.
type Capture struct {
	Field string
	Parse ParseFunc
}

// Rule is a single label pattern. Capture group i+1 of Regex fills Captures[i].
type Rule struct {
	Name     string
	Regex    *regexp.Regexp
	Captures []Capture
}

// Extractor applies an ordered set of independent rules to report text.
type Extractor struct {
	schema table.Schema
	label  string
	rules  []Rule
}

// NewExtractor creates an extractor. The label field receives the report's
// file name. Every captured field must be in the schema.
func NewExtractor(schema table.Schema, label string, rules []Rule) (*Extractor, error) {
	known := make(map[string]bool, len(schema))
	for _, name := range schema {
		known[name] = true
	}
	if !known[label] {
		return nil, errors.Errorf("label field %q is not in the schema", label)
	}
	for _, rule := range rules {
		if rule.Regex.NumSubexp() < len(rule.Captures) {
			return nil, errors.Errorf("rule %s has %d capture group(s), needs %d", rule.Name, rule.Regex.NumSubexp(), len(rule.Captures))
		}
		for _, c := range rule.Captures {
			if !known[c.Field] {
				return nil, errors.Errorf("rule %s captures unknown field %q", rule.Name, c.Field)
			}
		}
	}
	return &Extractor{schema: schema, label: label, rules: rules}, nil
}

// Schema returns the schema of the records the extractor produces.
func (e *Extractor) Schema() table.Schema {
	return e.schema
}

// Extract builds a record from report content. Rules that do not match leave
// their fields empty and do not affect other rules.
func (e *Extractor) Extract(name string, content string) table.Record {
	record := table.NewRecord(e.schema)
	record[e.label] = table.TextValue(name)
	for _, rule := range e.rules {
		match := ValsFromRegexSubmatch(content, rule.Regex)
		if match == nil {
			continue
		}
		for i, c := range rule.Captures {
			record[c.Field] = c.Parse(match[i])
		}
	}
	return record
}

// ExtractFile reads the whole report at path and extracts its record. The
// record label is the file's base name.
func (e *Extractor) ExtractFile(path string) (table.Record, error) {
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return e.Extract(filepath.Base(path), string(content)), nil
}

// ValsFromRegexSubmatch returns the capture groups of the first match of re in
// output, or nil if there is no match.
func ValsFromRegexSubmatch(output string, re *regexp.Regexp) []string {
	match := re.FindStringSubmatch(output)
	if len(match) < 2 {
		return nil
	}
	return match[1:]
}
