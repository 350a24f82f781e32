// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package bench

import "go.uber.org/atomic"

// Counters tallies the operations performed by a [Run]. Each pass adds to them
// once, after its timed loop, and they are read back by [Result.Summary].
type Counters struct {
	inserts atomic.Int64 // Values inserted
	removes atomic.Int64 // Removals that unlinked a node
	misses  atomic.Int64 // Removals that found no matching node
}

// Inserts returns the number of values inserted.
func (c *Counters) Inserts() int64 {
	return c.inserts.Load()
}

// Removes returns the number of removals that found a matching node.
func (c *Counters) Removes() int64 {
	return c.removes.Load()
}

// Misses returns the number of removals that found no matching node.
func (c *Counters) Misses() int64 {
	return c.misses.Load()
}
