// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

const benchOutput = `running 3 tests
test fastfield::multivalued::bench::bench_multi_value_ff_creation                                                        ... bench:  95,653,541 ns/iter (+/- 1,410,738)
test fastfield::multivalued::bench::bench_multi_value_ff_creation_with_sorting                                           ... bench: 103,466,980 ns/iter (+/- 6,247,651)
test fastfield::multivalued::bench::bench_multi_value_fflookup                                                           ... bench:   1,330,510 ns/iter (+/- 217,966)
test result: ok. 0 passed; 0 failed; 3 measured
`

func scanAll(t *testing.T, r *Reader) []*Benchmark {
	t.Helper()
	var out []*Benchmark
	for r.Scan() {
		out = append(out, r.Result())
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return out
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(benchOutput), "test")
	got := scanAll(t, r)

	var shortNames []string
	var ns []uint64
	for _, b := range got {
		shortNames = append(shortNames, b.ShortName)
		ns = append(ns, b.Ns)
		if b.Throughput != nil {
			t.Errorf("%s: Throughput = %d, want absent", b.Name, *b.Throughput)
		}
	}
	wantNames := []string{
		"bench_multi_value_ff_creation",
		"bench_multi_value_ff_creation_with_sorting",
		"bench_multi_value_fflookup",
	}
	if !reflect.DeepEqual(shortNames, wantNames) {
		t.Errorf("short names = %q, want %q", shortNames, wantNames)
	}
	wantNs := []uint64{95653541, 103466980, 1330510}
	if !reflect.DeepEqual(ns, wantNs) {
		t.Errorf("ns = %v, want %v", ns, wantNs)
	}

	// The header is line 1, so the first result is line 2.
	if file, line := got[0].Pos(); file != "test" || line != 2 {
		t.Errorf("Pos() = %q, %d, want %q, %d", file, line, "test", 2)
	}
}

func TestReaderSkipsInterleaved(t *testing.T) {
	// A non-matching line between results must not shift the
	// results that follow it.
	const data = `test a::first ... bench: 1 ns/iter (+/- 1)
some unrelated output
test a::second ... bench: 2 ns/iter (+/- 1)
`
	got := scanAll(t, NewReader(strings.NewReader(data), "test"))
	if len(got) != 2 || got[0].ShortName != "first" || got[1].ShortName != "second" {
		t.Errorf("got %+v, want results first, second", got)
	}
}

// errReader returns an error after its underlying reader is drained.
type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestReaderIOError(t *testing.T) {
	errBoom := errors.New("boom")
	input := io.MultiReader(
		strings.NewReader("test a::b ... bench: 1 ns/iter (+/- 1)\n"),
		&errReader{errBoom},
	)

	r := NewReader(input, "stream")
	if !r.Scan() {
		t.Fatalf("Scan() = false before error, Err() = %v", r.Err())
	}
	if r.Scan() {
		t.Fatalf("Scan() = true after read error, Result() = %+v", r.Result())
	}
	err := r.Err()
	if !errors.Is(err, errBoom) {
		t.Fatalf("Err() = %v, want wrapped %v", err, errBoom)
	}
	if !strings.Contains(err.Error(), "stream:1") {
		t.Errorf("Err() = %q, want position prefix %q", err, "stream:1")
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll(strings.NewReader(benchOutput))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("ParseAll returned %d results, want 3", len(got))
	}

	// Duplicates are preserved in input order.
	const dup = `test a::b ... bench: 1 ns/iter (+/- 1)
test a::b ... bench: 2 ns/iter (+/- 1)
`
	got, err = ParseAll(strings.NewReader(dup))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Ns != 1 || got[1].Ns != 2 {
		t.Errorf("ParseAll = %+v, want both duplicate records in order", got)
	}

	// Stream failures abort the batch.
	if _, err := ParseAll(&errReader{errors.New("boom")}); err == nil {
		t.Error("ParseAll on a failing stream returned nil error")
	}
}
