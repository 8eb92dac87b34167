// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package table provides the record and table types that carry extracted
// simulator metrics from the extractor to the report renderers.
package table

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Schema is the ordered list of field names shared by every record in a report.
// The first field is the row label.
type Schema []string

// Record maps field names to values. Records built with NewRecord always carry
// every schema field, Empty when no value was found.
type Record map[string]Value

// NewRecord returns a record with every schema field set to Empty.
func NewRecord(schema Schema) Record {
	record := make(Record, len(schema))
	for _, name := range schema {
		record[name] = Value{}
	}
	return record
}

// Validate checks that the record's field set is exactly the schema's field set.
func (s Schema) Validate(record Record) error {
	want := mapset.NewThreadUnsafeSet(s...)
	got := mapset.NewThreadUnsafeSetWithSize[string](len(record))
	for name := range record {
		got.Add(name)
	}
	if want.Equal(got) {
		return nil
	}
	if missing := want.Difference(got); missing.Cardinality() > 0 {
		names := missing.ToSlice()
		slices.Sort(names)
		return fmt.Errorf("record is missing field(s): %v", names)
	}
	extra := got.Difference(want).ToSlice()
	slices.Sort(extra)
	return fmt.Errorf("record has unknown field(s): %v", extra)
}

// Row returns the record's values in schema order.
func (s Schema) Row(record Record) []Value {
	row := make([]Value, len(s))
	for i, name := range s {
		row[i] = record[name]
	}
	return row
}

// Table is the ordered set of records that share a group name. It becomes one
// sheet in the workbook.
type Table struct {
	Name    string
	Schema  Schema
	Records []Record
}

// Collection groups records into tables keyed by group name. Records keep the
// order in which they were added.
type Collection struct {
	schema Schema
	tables map[string]*Table
}

// NewCollection creates an empty collection for records of the given schema.
func NewCollection(schema Schema) *Collection {
	return &Collection{
		schema: schema,
		tables: make(map[string]*Table),
	}
}

// Schema returns the schema the collection was created with.
func (c *Collection) Schema() Schema {
	return c.schema
}

// Add appends a record to the named group, creating the group if needed.
func (c *Collection) Add(group string, record Record) error {
	if group == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	if err := c.schema.Validate(record); err != nil {
		return fmt.Errorf("group %s: %w", group, err)
	}
	t, ok := c.tables[group]
	if !ok {
		t = &Table{Name: group, Schema: c.schema}
		c.tables[group] = t
	}
	t.Records = append(t.Records, record)
	return nil
}

// Len returns the number of groups.
func (c *Collection) Len() int {
	return len(c.tables)
}

// NumRecords returns the number of records across all groups.
func (c *Collection) NumRecords() (n int) {
	for _, t := range c.tables {
		n += len(t.Records)
	}
	return
}

// Tables returns the tables sorted alphabetically by group name.
func (c *Collection) Tables() []Table {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	tables := make([]Table, 0, len(names))
	for _, name := range names {
		tables = append(tables, *c.tables[name])
	}
	return tables
}
