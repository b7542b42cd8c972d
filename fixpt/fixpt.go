// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fixpt provides the signed fixed-point format shared by the
plasticity rules: 11 fractional bits, so One = 2048 represents 1.0.
Lookup tables, potentiation and depression magnitudes, and weight
dependence scale factors are all expressed in this format.
*/
package fixpt

import "github.com/goki/mat32"

const (
	// Shift is the number of fractional bits
	Shift = 11

	// One is the fixed-point representation of 1.0
	One int32 = 1 << Shift
)

// FromFloat converts a float to fixed point, rounding half away from zero.
func FromFloat(f float32) int32 {
	return Round(f * float32(One))
}

// Round rounds to the nearest integer, half away from zero
func Round(f float32) int32 {
	if f < 0 {
		return -int32(mat32.Floor(-f + 0.5))
	}
	return int32(mat32.Floor(f + 0.5))
}

// ToFloat converts a fixed-point value back to a float
func ToFloat(v int32) float32 {
	return float32(v) / float32(One)
}

// Mul multiplies two fixed-point values, keeping the result in fixed point.
// The product is formed in 64 bits so accumulated magnitudes beyond
// the int16 range do not wrap.
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> Shift)
}
