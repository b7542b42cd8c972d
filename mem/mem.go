// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mem reads and writes the word-addressed configuration regions that
carry plasticity parameters from the host-side writer to the rules.
A region is a little-endian byte sequence consumed in whole 32-bit words.
Spec writes a region, Cursor walks it.
*/
package mem

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WordBytes is the size of one region word
const WordBytes = 4

// ErrShortRegion is returned when a read would run past the end of the region
var ErrShortRegion = errors.New("mem: region too short")

// Region is a configuration memory region
type Region []byte

// Cursor is a position within a Region.  Reads return the cursor advanced
// past what was consumed, leaving the receiver untouched.
type Cursor struct {
	Reg Region
	Off int
}

// Start returns a cursor at the beginning of the region
func (rg Region) Start() Cursor {
	return Cursor{Reg: rg}
}

// Remaining returns the number of bytes left after the cursor
func (c Cursor) Remaining() int {
	return len(c.Reg) - c.Off
}

func (c Cursor) need(n int) error {
	if c.Off < 0 || c.Remaining() < n {
		return fmt.Errorf("need %d bytes at offset %d of %d: %w", n, c.Off, len(c.Reg), ErrShortRegion)
	}
	return nil
}

// Uint32 reads one word
func (c Cursor) Uint32() (uint32, Cursor, error) {
	if err := c.need(WordBytes); err != nil {
		return 0, c, err
	}
	v := binary.LittleEndian.Uint32(c.Reg[c.Off:])
	c.Off += WordBytes
	return v, c, nil
}

// Int32 reads one word as a signed value
func (c Cursor) Int32() (int32, Cursor, error) {
	v, nc, err := c.Uint32()
	return int32(v), nc, err
}

// Int16s copies len(dst) packed 16-bit entries into dst.  Entries are
// packed two per word, so the cursor advances by Int16Words(len(dst)) words.
func (c Cursor) Int16s(dst []int16) (Cursor, error) {
	nb := Int16Words(len(dst)) * WordBytes
	if err := c.need(nb); err != nil {
		return c, err
	}
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(c.Reg[c.Off+2*i:]))
	}
	c.Off += nb
	return c, nil
}

// Int16Words returns the number of words occupied by n packed 16-bit entries
func Int16Words(n int) int {
	return (n + 1) / 2
}

// Spec accumulates a region, word by word
type Spec struct {
	buf []byte
}

// NewSpec returns an empty Spec
func NewSpec() *Spec {
	return &Spec{}
}

// WriteUint32 appends one word
func (sp *Spec) WriteUint32(v uint32) {
	sp.buf = binary.LittleEndian.AppendUint32(sp.buf, v)
}

// WriteInt32 appends one signed word
func (sp *Spec) WriteInt32(v int32) {
	sp.WriteUint32(uint32(v))
}

// WriteInt16s appends packed 16-bit entries, padding an odd count to a whole word
func (sp *Spec) WriteInt16s(vals []int16) {
	for _, v := range vals {
		sp.buf = binary.LittleEndian.AppendUint16(sp.buf, uint16(v))
	}
	if len(vals)%2 != 0 {
		sp.buf = binary.LittleEndian.AppendUint16(sp.buf, 0)
	}
}

// Len returns the number of bytes written so far
func (sp *Spec) Len() int {
	return len(sp.buf)
}

// Region returns the bytes written so far as a Region
func (sp *Spec) Region() Region {
	return Region(sp.buf)
}
