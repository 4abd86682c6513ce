// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"bufio"
	"fmt"
	"io"
)

// A Reader reads benchmark results from cargo bench output.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next
// result line, skipping everything else in the stream, and Result
// retrieves it. Each Result is freshly allocated, so the caller may
// retain it across Scans.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	cur      *Benchmark
	fileName string
	line     int
}

// NewReader constructs a reader that extracts benchmark results from r.
// fileName is used in error messages and record positions; it is
// purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.s = bufio.NewScanner(ior)
	r.err = nil
	r.cur = nil
	r.fileName = fileName
	r.line = 0
}

// Scan advances the reader to the next benchmark result and reports
// whether one was found. If Scan reaches EOF or an I/O error occurs,
// it returns false, in which case the caller should use the Err
// method to distinguish the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		b, ok := ParseLine(r.s.Text())
		if !ok {
			// Not a result line. Ignore it.
			continue
		}
		b.fileName = r.fileName
		b.line = r.line
		r.cur = b
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Result returns the benchmark that was just read by Scan.
func (r *Reader) Result() *Benchmark {
	return r.cur
}

// Err returns the first I/O error that was encountered by the Reader.
// Skipped lines are not errors.
func (r *Reader) Err() error {
	return r.err
}

// ParseAll reads ior to EOF and returns every benchmark result found,
// in input order, duplicates included. A non-nil error reports a
// failure of the underlying stream, never a malformed line.
func ParseAll(ior io.Reader) ([]*Benchmark, error) {
	r := NewReader(ior, "")
	var benchmarks []*Benchmark
	for r.Scan() {
		benchmarks = append(benchmarks, r.Result())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return benchmarks, nil
}
