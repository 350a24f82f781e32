// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Command dlist-bench demonstrates the stack and queue containers of the list
// package, then measures bulk insertion and removal for each of them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DataDog/dlist-bench/bench"
	"github.com/DataDog/dlist-bench/config"
	"github.com/DataDog/dlist-bench/list"
	"github.com/DataDog/dlist-bench/log"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, list.NewStack(), list.NewQueue()))
}

// run demonstrates and measures stack and queue, writing the report to out and
// diagnostics to errOut. It returns the process exit code.
func run(out, errOut io.Writer, stack, queue list.Container) int {
	// The .env file may select the log format, so it is loaded first and its
	// failure reported once logging is set up.
	dotEnvErr := config.LoadDotEnv()

	lc := config.NewLogConfig()
	switch lc.Format {
	case config.LogFormatJSON:
		log.SetBackend(log.ZerologBackend(log.NewZerolog(errOut, lc.Level)))
	default:
		if err := log.SetupAgentLogger(errOut, lc.Level); err != nil {
			fmt.Fprintf(errOut, "dlist-bench: %v\n", err)
		}
	}
	if dotEnvErr != nil {
		// Carry on with whatever the environment already holds.
		log.Warn("dlist-bench: %v", dotEnvErr)
	}
	cfg := config.New()

	defer stack.Clear()
	defer queue.Clear()

	demo(out, "Stack", stack, 20)
	fmt.Fprintln(out)
	demo(out, "Queue", queue, 30)

	fmt.Fprint(out, "\nPerformance Measurements:\n")
	var report bench.Report
	for _, c := range []struct {
		name      string
		container list.Container
	}{
		{"Stack", stack},
		{"Queue", queue},
	} {
		res, err := bench.Run(c.container, cfg.Bench)
		if err != nil {
			_ = log.Criticalf("dlist-bench: %s benchmark failed: %w", c.name, err)
			return 1
		}
		if err := res.WriteTable(out, c.name); err != nil {
			_ = log.Errorf("dlist-bench: writing %s results: %w", c.name, err)
		}
		report.Benchmarks = append(report.Benchmarks, res.Summary(c.name))
	}

	if cfg.ReportPath != "" {
		if err := writeReport(cfg.ReportPath, report); err != nil {
			_ = log.Errorf("dlist-bench: %w", err)
		}
	}
	return 0
}

// demo inserts 10, 20 and 30 into c, then removes the value rm, printing the
// contents after each step.
func demo(out io.Writer, name string, c list.Container, rm int) {
	fmt.Fprintf(out, "%s operations:\n", name)
	c.Insert(10)
	c.Insert(20)
	c.Insert(30)
	fmt.Fprintf(out, "%s contents after inserts: ", name)
	_ = list.Fprint(out, c.Contents())
	c.Remove(rm)
	fmt.Fprintf(out, "%s contents after removing %d: ", name, rm)
	_ = list.Fprint(out, c.Contents())
}

func writeReport(path string, report bench.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	log.Info("dlist-bench: report written to %s", path)
	return nil
}
