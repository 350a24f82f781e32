// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package bench

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type (
	// Report is the machine-readable summary of one or more runs.
	Report struct {
		Benchmarks []Summary `yaml:"benchmarks"`
	}

	// Summary describes a single [Result] under a name.
	Summary struct {
		Name    string        `yaml:"name"`
		Seed    uint64        `yaml:"seed"`
		Sizes   []SizeSummary `yaml:"sizes"`
		Inserts int64         `yaml:"inserts"`
		Removes int64         `yaml:"removes"`
		Misses  int64         `yaml:"misses"`
	}

	// SizeSummary holds the durations measured for one size, in whole
	// milliseconds.
	SizeSummary struct {
		Size     int   `yaml:"size"`
		InsertMS int64 `yaml:"insert_ms"`
		DeleteMS int64 `yaml:"delete_ms"`
	}
)

// WriteTable prints the results as a fixed layout table: a header naming the
// container, a line with the sizes, then one line of insertion times and one
// line of removal times, in milliseconds.
func (r *Result) WriteTable(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Performance Results for %s:\n", name)
	bw.WriteString("Operation")
	for _, m := range r.Measurements {
		fmt.Fprintf(bw, "\t\t%d", m.Size)
	}
	bw.WriteString("\nInsert (ms)")
	for _, m := range r.Measurements {
		fmt.Fprintf(bw, "\t\t%d", m.InsertMillis())
	}
	bw.WriteString("\nDelete (ms)")
	for _, m := range r.Measurements {
		fmt.Fprintf(bw, "\t\t%d", m.DeleteMillis())
	}
	bw.WriteString("\n")

	// bufio.Writer errors are sticky, so Flush reports the first failure.
	return bw.Flush()
}

// Summary returns the machine-readable summary of r under name.
func (r *Result) Summary(name string) Summary {
	s := Summary{
		Name:    name,
		Seed:    r.Seed,
		Sizes:   make([]SizeSummary, len(r.Measurements)),
		Inserts: r.Counters.Inserts(),
		Removes: r.Counters.Removes(),
		Misses:  r.Counters.Misses(),
	}
	for i, m := range r.Measurements {
		s.Sizes[i] = SizeSummary{Size: m.Size, InsertMS: m.InsertMillis(), DeleteMS: m.DeleteMillis()}
	}
	return s
}

// WriteYAML encodes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: encoding report: %w", err)
	}
	return enc.Close()
}
