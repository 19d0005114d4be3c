// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Entries holds dictionary entries in the order they are written
type Entries struct {
	keys []string
	vals []string
}

// Add adds an entry with an already formatted value
func (o *Entries) Add(key, val string) {
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// Write writes all entries as a JSON object. Nested lines are indented with indent
func (o Entries) Write(buf *bytes.Buffer, indent string) {
	if len(o.keys) == 0 {
		io.Ff(buf, "{}")
		return
	}
	io.Ff(buf, "{\n")
	for i, key := range o.keys {
		if i > 0 {
			io.Ff(buf, ",\n")
		}
		io.Ff(buf, "%s  %q : %s", indent, key, o.vals[i])
	}
	io.Ff(buf, "\n%s}", indent)
}

// FmtWord formats a string entry
func FmtWord(s string) string {
	return io.Sf("%q", s)
}

// FmtScalar formats a scalar with the shortest representation that reads back exactly
func FmtScalar(v float64) string {
	return io.Sf("%v", v)
}

// FmtVector formats a vector
func FmtVector(v []float64) string {
	l := make([]string, len(v))
	for i, x := range v {
		l[i] = FmtScalar(x)
	}
	return "[" + strings.Join(l, ", ") + "]"
}

// FmtVectors formats a list of vectors, one per line
func FmtVectors(v [][]float64, indent string) string {
	if len(v) == 0 {
		return "[]"
	}
	l := make([]string, len(v))
	for i, x := range v {
		l[i] = indent + "    " + FmtVector(x)
	}
	return "[\n" + strings.Join(l, ",\n") + "\n" + indent + "  ]"
}
