// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchparse extracts benchmark results from the output of
// cargo bench.
//
// The libtest harness prints one line per micro-benchmark, surrounded
// by arbitrary other output (headers, summaries, compiler warnings):
//
//	running 3 tests
//	test fastfield::bench::bench_lookup  ... bench:   1,330,510 ns/iter (+/- 217,966)
//	test result: ok. 0 passed; 0 failed; 3 measured
//
// This package recognizes the result lines, normalizes their numeric
// fields, and produces typed records for downstream consumption. The
// reader is structured as a streaming operation in the manner of
// bufio.Scanner, so callers can process results incrementally without
// loading whole files.
package benchparse

import (
	"regexp"
	"strconv"
	"strings"
)

// A Benchmark is a single micro-benchmark result extracted from one
// line of cargo bench output.
//
// Benchmarks are constructed atomically from a matched line and not
// mutated afterwards.
type Benchmark struct {
	// Name is the full qualified name of the benchmark, including
	// its module path, e.g. "fastfield::bench::bench_lookup".
	Name string `json:"name"`

	// ShortName is the part of Name after its last "::" separator,
	// or Name itself if it has none.
	ShortName string `json:"shortname"`

	// Ns is the benchmark's duration in nanoseconds.
	Ns uint64 `json:"ns"`

	// Variance is the variance of the duration reported by the
	// harness, in nanoseconds.
	Variance uint64 `json:"variance"`

	// Throughput is the benchmark's throughput in MB/s, or nil if
	// the line carried no throughput clause.
	Throughput *uint64 `json:"throughput,omitempty"`

	// fileName and line record where this Benchmark was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Benchmark that was
// read by a Reader. For Benchmarks that were not read by a Reader, it
// returns "", 0.
func (b *Benchmark) Pos() (fileName string, line int) {
	return b.fileName, b.line
}

// Equal reports whether b and o name the same benchmark. Identity is
// the name alone; measurements are ignored, so two records of the
// same benchmark with different timings are still equal.
func (b *Benchmark) Equal(o *Benchmark) bool {
	return b.Name == o.Name
}

// benchmarkLine matches one result line of the libtest bench harness:
//
//	test name::path ... bench: 12,345 ns/iter (+/- 678) = 2,314 MB/s
//
// The throughput clause is optional. Numeric captures are runs of
// digits and commas; commas are discarded before parsing, wherever
// they appear. The pattern is unanchored, so a result embedded in
// surrounding text still matches.
var benchmarkLine = regexp.MustCompile(
	`test\s+(?P<name>\S+)` +
		`\s+\.\.\.\s+bench:\s+(?P<ns>[0-9,]+)\s+ns/iter` +
		`\s+\(\+/-\s+(?P<variance>[0-9,]+)\)` +
		`(?:\s+=\s+(?P<throughput>[0-9,]+)\s+MB/s)?`)

// ParseLine extracts a Benchmark from one line of harness output. The
// second result reports whether line is a benchmark result line.
// Lines that are not (headers, summaries, prose) are a normal, silent
// non-match, not an error.
//
// A numeric field that cannot be parsed after comma removal, which
// under this grammar only happens on uint64 overflow, discards the
// whole line, except for throughput: a bad throughput is dropped and
// the rest of the record kept, since it is an optional enrichment
// rather than a core metric.
func ParseLine(line string) (*Benchmark, bool) {
	m := benchmarkLine.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	name := m[1]
	ns, ok := parseCommas(m[2])
	if !ok {
		return nil, false
	}
	variance, ok := parseCommas(m[3])
	if !ok {
		return nil, false
	}
	b := &Benchmark{
		Name:      name,
		ShortName: shortName(name),
		Ns:        ns,
		Variance:  variance,
	}
	if tp, ok := parseCommas(m[4]); ok {
		b.Throughput = &tp
	}
	return b, true
}

// parseCommas parses s as an unsigned integer after dropping every
// comma. The harness groups thousands with commas, but any placement
// is accepted.
func parseCommas(s string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// shortName returns the suffix of name after its last "::" separator.
func shortName(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+len("::"):]
	}
	return name
}
