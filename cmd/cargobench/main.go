// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cargobench reads cargo bench output from input files, extracts the
// benchmark result lines, and writes the results to stdout. If no
// inputs are provided, it reads from stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cargobench/benchparse"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: cargobench [flags] [inputs...]

cargobench reads cargo bench output from the input files, extracts the
benchmark result lines, and writes the results to stdout. If no inputs
are provided, it reads from stdin. Input lines that are not benchmark
results are skipped.
`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	jsonOut := flag.Bool("json", false, "write results as a JSON array instead of result lines")
	sortOut := flag.Bool("sort", false, "order results by benchmark name")
	dedup := flag.Bool("dedup", false, "keep only the first result for each benchmark name")
	flag.Usage = usage
	flag.Parse()

	files := benchparse.Files{Paths: flag.Args(), AllowStdin: true}
	benchmarks := []*benchparse.Benchmark{}
	for files.Scan() {
		benchmarks = append(benchmarks, files.Result())
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}

	if *dedup {
		benchmarks = benchparse.Dedup(benchmarks)
	}
	if *sortOut {
		benchparse.Sort(benchmarks)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "\t")
		if err := enc.Encode(benchmarks); err != nil {
			log.Fatal(err)
		}
		return
	}
	w := benchparse.NewWriter(os.Stdout)
	for _, b := range benchmarks {
		if err := w.Write(b); err != nil {
			log.Fatal(err)
		}
	}
}
