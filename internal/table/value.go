// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package table

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "empty"
	}
}

// Value is an optional field value: empty, an integer count, a floating point
// rate, or the raw text of a token that could not be parsed as a number.
// The zero Value is empty.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue returns a Value holding an integer.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue returns a Value holding a float.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// TextValue returns a Value holding raw text.
func TextValue(s string) Value {
	return Value{kind: KindText, s: s}
}

// ParseInt parses a base 10 integer token. An unparsable token yields an empty Value.
func ParseInt(token string) Value {
	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}
	}
	return IntValue(i)
}

// ParseFloat parses a finite float token. Anything else yields an empty Value.
func ParseFloat(token string) Value {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}
	}
	return FloatValue(f)
}

// ParseFloatOrText parses a finite float token and falls back to keeping the
// raw token as text, e.g., for "inf" or "-nan".
func ParseFloatOrText(token string) Value {
	if v := ParseFloat(token); !v.IsEmpty() {
		return v
	}
	return TextValue(token)
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Int returns the integer and true if the value holds an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float and true if the value holds a float.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Text returns the text and true if the value holds text.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Any returns the underlying value as int64, float64 or string, or nil when empty.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}

// String renders the value the way it appears in a report cell. Empty renders
// as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}
