// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

/*
Package progress provides CLI progress status options.
*/
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var spinChars []string = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

type statusState struct {
	label       string
	status      string
	statusIsNew bool
	spinIndex   int
}

// multiStatus shows one status line per label. It redraws only when a status
// changes, so it needs no background goroutine.
type multiStatus struct {
	out      io.Writer
	tty      bool
	statuses []statusState
	drawn    int
}

// NewMultiStatus creates a new MultiStatus that writes to out. Lines are
// redrawn in place when out is a terminal and appended otherwise.
func NewMultiStatus(out io.Writer) *multiStatus {
	ms := multiStatus{out: out}
	if f, ok := out.(*os.File); ok {
		ms.tty = term.IsTerminal(int(f.Fd())) // #nosec G115
	}
	return &ms
}

// AddLabel adds a status line to the MultiStatus
func (ms *multiStatus) AddLabel(label string) (err error) {
	// make sure label is unique
	for _, status := range ms.statuses {
		if status.label == label {
			err = fmt.Errorf("status with label %s already exists", label)
			return
		}
	}
	ms.statuses = append(ms.statuses, statusState{label, "?", true, 0})
	return
}

// Status updates the status of a label and redraws
func (ms *multiStatus) Status(label string, status string) (err error) {
	for i, s := range ms.statuses {
		if s.label == label {
			if status != s.status {
				ms.statuses[i].status = status
				ms.statuses[i].statusIsNew = true
				ms.draw()
			}
			return
		}
	}
	err = fmt.Errorf("did not find status with label %s", label)
	return
}

// Printf writes a message above the status lines. On a terminal the status
// lines are cleared first and redrawn below the message.
func (ms *multiStatus) Printf(format string, a ...any) {
	if ms.tty {
		for n := ms.drawn; n > 0; n-- {
			fmt.Fprintf(ms.out, "\x1b[1A\x1b[2K")
		}
		ms.drawn = 0
	}
	fmt.Fprintf(ms.out, format, a...)
	if ms.tty {
		ms.draw()
	}
}

// Finish prints any status that has not been shown yet
func (ms *multiStatus) Finish() {
	ms.draw()
}

func (ms *multiStatus) draw() {
	if ms.tty {
		// move back to the first line we drew
		for n := ms.drawn; n > 0; n-- {
			fmt.Fprintf(ms.out, "\x1b[1A")
		}
		ms.drawn = 0
	}
	for i, s := range ms.statuses {
		if !ms.tty && !s.statusIsNew {
			continue
		}
		if ms.tty {
			fmt.Fprintf(ms.out, "\x1b[2K")
		}
		fmt.Fprintf(ms.out, "%-30s  %s  %-40s\n", s.label, spinChars[s.spinIndex], s.status)
		ms.statuses[i].statusIsNew = false
		ms.statuses[i].spinIndex = (s.spinIndex + 1) % len(spinChars)
		ms.drawn++
	}
}
