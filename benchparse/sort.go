// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchparse

import (
	"sort"
	"strings"
)

// ByName compares two benchmarks by full name, the identity key for
// ordering and deduplication. All other fields are ignored, so two
// records of the same benchmark order as equal even when their
// measurements differ.
func ByName(a, b *Benchmark) int {
	return strings.Compare(a.Name, b.Name)
}

// Sort sorts benchmarks lexicographically by full name. The sort is
// stable, so records with the same name keep their input order.
func Sort(benchmarks []*Benchmark) {
	sort.SliceStable(benchmarks, func(i, j int) bool {
		return ByName(benchmarks[i], benchmarks[j]) < 0
	})
}

// Dedup returns benchmarks with all but the first record for each
// name removed, preserving the order of the survivors. The input
// slice is not modified.
func Dedup(benchmarks []*Benchmark) []*Benchmark {
	seen := make(map[string]bool, len(benchmarks))
	out := benchmarks[:0:0]
	for _, b := range benchmarks {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		out = append(out, b)
	}
	return out
}
