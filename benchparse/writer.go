// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A Writer writes benchmark results in the cargo bench line format.
// Its output parses back to identical records.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes benchmark results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the result line for b to w, grouping thousands with
// commas the way the harness does.
func (w *Writer) Write(b *Benchmark) error {
	fmt.Fprintf(&w.buf, "test %s ... bench: %s ns/iter (+/- %s)", b.Name, group(b.Ns), group(b.Variance))
	if b.Throughput != nil {
		fmt.Fprintf(&w.buf, " = %s MB/s", group(*b.Throughput))
	}
	w.buf.WriteByte('\n')

	// Writes to the buffer can't fail, so we only have to check
	// whether flushing to the io.Writer does.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// group formats v in decimal with a comma between each group of three
// digits.
func group(v uint64) string {
	s := strconv.FormatUint(v, 10)
	if len(s) <= 3 {
		return s
	}
	var buf bytes.Buffer
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	buf.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		buf.WriteByte(',')
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
