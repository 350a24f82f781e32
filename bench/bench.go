// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package bench times bulk insertion and bulk removal of random integers into
// a [list.Container], for a sequence of input sizes. Each size runs a single
// trial, with no warm-up. Removal goes through the values in generation order,
// so each removal is a linear scan and the removal pass is quadratic on
// average.
package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/DataDog/dlist-bench/list"
	"github.com/DataDog/dlist-bench/log"
)

// DefaultValueRange is the exclusive upper bound of generated values when
// [Options.ValueRange] is unset.
const DefaultValueRange = 100_000

// DefaultSizes are the input sizes measured when [Options.Sizes] is empty.
var DefaultSizes = []int{100, 1_000, 10_000}

// ErrInvalidOptions is returned by [Run] when the supplied [Options] cannot be
// used.
var ErrInvalidOptions = errors.New("bench: invalid options")

type (
	// Options controls a benchmark [Run].
	Options struct {
		// Sizes are the input sizes, measured in order. Defaults to
		// [DefaultSizes].
		Sizes []int
		// ValueRange is the exclusive upper bound of generated values. Defaults to
		// [DefaultValueRange].
		ValueRange int
		// Seed seeds the value generator. Zero picks a random seed.
		Seed uint64
		// Verify runs [list.Container.Check] after every pass. This is not timed.
		Verify bool
	}

	// Measurement holds the durations measured for a single input size.
	Measurement struct {
		Size   int
		Insert time.Duration
		Delete time.Duration
	}

	// Result holds the outcome of a [Run].
	Result struct {
		// Seed is the seed actually used to generate values.
		Seed uint64
		// Measurements has one entry per size, in the order they were run.
		Measurements []Measurement
		// Counters tallies the operations performed.
		Counters Counters
	}
)

// Run measures c for every size in opts. The same container is used for all
// sizes; values already present in it are left in place, and every value
// inserted by a pass is removed by the following one.
func Run(c list.Container, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Seed:         opts.Seed,
		Measurements: make([]Measurement, 0, len(opts.Sizes)),
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	for _, n := range opts.Sizes {
		values := make([]int, n)
		for i := range values {
			values[i] = rng.IntN(opts.ValueRange)
		}

		before := c.Len()
		m := Measurement{Size: n}

		start := time.Now()
		for _, v := range values {
			c.Insert(v)
		}
		m.Insert = time.Since(start)
		res.Counters.inserts.Add(int64(n))

		if err := verify(c, opts.Verify, n, "insert"); err != nil {
			return nil, err
		}

		var hits int
		start = time.Now()
		for _, v := range values {
			if c.Remove(v) {
				hits++
			}
		}
		m.Delete = time.Since(start)
		res.Counters.removes.Add(int64(hits))
		res.Counters.misses.Add(int64(n - hits))

		if err := verify(c, opts.Verify, n, "delete"); err != nil {
			return nil, err
		}
		if left := c.Len(); left != before {
			return nil, log.Errorf("bench: %d values left after the delete pass of size %d, expected %d: %w", left, n, before, list.ErrCorrupt)
		}

		log.Debug("bench: size %d inserted in %s, deleted in %s", n, m.Insert, m.Delete)
		res.Measurements = append(res.Measurements, m)
	}

	return res, nil
}

// withDefaults validates the options and fills in unset fields.
func (o Options) withDefaults() (Options, error) {
	if len(o.Sizes) == 0 {
		o.Sizes = DefaultSizes
	}
	for _, n := range o.Sizes {
		if n <= 0 {
			return o, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, n)
		}
	}
	switch {
	case o.ValueRange == 0:
		o.ValueRange = DefaultValueRange
	case o.ValueRange < 0:
		return o, fmt.Errorf("%w: value range must be positive, got %d", ErrInvalidOptions, o.ValueRange)
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o, nil
}

func verify(c list.Container, enabled bool, size int, pass string) error {
	if !enabled {
		return nil
	}
	if err := c.Check(); err != nil {
		return log.Errorf("bench: after the %s pass of size %d: %w", pass, size, err)
	}
	return nil
}

// InsertMillis returns the insertion duration in whole milliseconds.
func (m Measurement) InsertMillis() int64 {
	return m.Insert.Milliseconds()
}

// DeleteMillis returns the removal duration in whole milliseconds.
func (m Measurement) DeleteMillis() int64 {
	return m.Delete.Milliseconds()
}
