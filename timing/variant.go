// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import (
	"github.com/goki/ki/kit"
	"gopkg.in/yaml.v3"
)

// Variant selects how the rule obtains its peak time
type Variant int32

//go:generate stringer -type=Variant

var KiT_Variant = kit.Enums.AddEnum(VariantN, kit.NotBitFlag, nil)

func (ev Variant) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Variant) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

func (ev Variant) MarshalYAML() (any, error) { return ev.String(), nil }
func (ev *Variant) UnmarshalYAML(value *yaml.Node) error {
	return ev.FromString(value.Value)
}

// The timing rule variants
const (
	// FixedPeak has the envelope start at the reference spike: the peak
	// time is the time-shift constant 0 and is not present in the region.
	FixedPeak Variant = iota

	// ConfiguredPeak reads the peak time, in timesteps, from the word
	// immediately preceding the lookup table in the region.
	ConfiguredPeak

	VariantN
)
