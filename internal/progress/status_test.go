package progress

// Copyright (C) 2021-2024 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewMultiStatus(t *testing.T) {
	status := NewMultiStatus(&bytes.Buffer{})
	if status == nil {
		t.Fatal("failed to create a status")
	}
	if status.tty {
		t.Fatal("a buffer is not a terminal")
	}
}

func TestMultiStatus(t *testing.T) {
	var out bytes.Buffer
	status := NewMultiStatus(&out)
	if status.AddLabel("A") != nil {
		t.Fatal("failed to add label")
	}
	if status.AddLabel("B") != nil {
		t.Fatal("failed to add label")
	}
	if status.AddLabel("A") == nil {
		t.Fatal("added label twice")
	}
	if status.Status("A", "FOO") != nil {
		t.Fatal("failed to update status")
	}
	if status.Status("B", "BAR") != nil {
		t.Fatal("failed to update status")
	}
	if status.Status("C", "WOOPS") == nil {
		t.Fatal("updated status of non-existent label")
	}
	status.Finish()

	text := out.String()
	if strings.Contains(text, "\x1b[") {
		t.Fatal("escape sequences written to a non-terminal")
	}
	if !strings.Contains(text, "FOO") || !strings.Contains(text, "BAR") {
		t.Fatalf("missing status in output: %q", text)
	}
}

func TestMultiStatusUnchangedNotRedrawn(t *testing.T) {
	var out bytes.Buffer
	status := NewMultiStatus(&out)
	_ = status.AddLabel("A")
	_ = status.Status("A", "reading")
	before := out.Len()
	_ = status.Status("A", "reading")
	if out.Len() != before {
		t.Fatal("unchanged status was redrawn")
	}
}

func TestMultiStatusPrintf(t *testing.T) {
	var out bytes.Buffer
	status := NewMultiStatus(&out)
	_ = status.AddLabel("A")
	_ = status.Status("A", "reading")
	status.Printf("Processing directory for sheet: %s\n", "A")
	text := out.String()
	if !strings.HasSuffix(text, "Processing directory for sheet: A\n") {
		t.Fatalf("message not written after the status: %q", text)
	}
	if strings.Count(text, "reading") != 1 {
		t.Fatalf("status redrawn on a non-terminal: %q", text)
	}
}
