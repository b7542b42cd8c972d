// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lut provides fixed-point lookup tables indexed by simulation time,
used by plasticity rules in place of runtime transcendental math.
*/
package lut

import (
	"github.com/emer/cerebellum/fixpt"
	"github.com/emer/cerebellum/mem"
)

const (
	// SinSize is the number of entries in the sine-shaped decay table
	SinSize = 256

	// SinShift is the time shift applied before indexing the sine table
	SinShift = 0
)

// Table is a fixed-point lookup table.  It is filled once and only read after.
type Table []int16

// Copy reads n packed 16-bit entries from the region at c into a new Table,
// returning the cursor advanced past the entries.
func Copy(c mem.Cursor, n int) (Table, mem.Cursor, error) {
	tbl := make(Table, n)
	nc, err := c.Int16s(tbl)
	if err != nil {
		return nil, c, err
	}
	return tbl, nc, nil
}

// Lookup returns the entry for time t: t is shifted right by shift
// and the resulting index wraps modulo the table length.
// An empty table always yields 0.
func Lookup(t uint32, shift uint, tbl Table) int32 {
	n := uint32(len(tbl))
	if n == 0 {
		return 0
	}
	idx := (t >> shift) % n
	return int32(tbl[idx])
}

// Generate fills a table of n entries where entry i holds fun evaluated
// at time i << shift, in fixed point.  Values are saturated to the int16 range.
func Generate(n int, shift uint, fun func(t float32) float32) Table {
	tbl := make(Table, n)
	for i := range tbl {
		tm := float32(i << shift)
		v := fixpt.FromFloat(fun(tm))
		switch {
		case v > 32767:
			v = 32767
		case v < -32768:
			v = -32768
		}
		tbl[i] = int16(v)
	}
	return tbl
}

// Last returns the final entry as a float, or 0 for an empty table
func (tb Table) Last() float32 {
	if len(tb) == 0 {
		return 0
	}
	return fixpt.ToFloat(int32(tb[len(tb)-1]))
}
