// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/emer/cerebellum/fixpt"
	"github.com/emer/cerebellum/lut"
	"github.com/emer/cerebellum/mem"
	"github.com/emer/emergent/v2/params"
	"github.com/goki/mat32"
)

// ExecutableSuffix names the binary variant built with this timing rule
const ExecutableSuffix = "cerebellum"

// RuleName is the name under which this rule reports provenance
const RuleName = "TimingDependenceCerebellum"

// timing.Params are the host-side parameters of the cerebellum timing rule,
// used to generate the region that Rule.Initialise consumes.
type Params struct {
	Tau      float32 `yaml:"tau" def:"20" min:"1" desc:"time constant of the decay envelope, in msec -- table entry at time t is exp(-t/Tau) * cos(t/Tau)^20"`
	PeakTime float32 `yaml:"peak_time" def:"100" min:"0" desc:"time after a presynaptic spike, in msec, before which feedback spikes cause no depression"`
	Variant  Variant `yaml:"variant" desc:"whether the peak time is written into the region (ConfiguredPeak) or fixed at 0 (FixedPeak)"`

	TauLastEntry float32 `inactive:"+" view:"-" json:"-" yaml:"-" desc:"value of the last table entry written by WriteParams, as a float"`
}

func (tp *Params) Defaults() {
	tp.Tau = 20
	tp.PeakTime = 100
	tp.Variant = ConfiguredPeak
	tp.Update()
}

// Update must be called after any changes to parameters
func (tp *Params) Update() {
	if tp.Tau < 1 {
		tp.Tau = 1
	}
	if tp.PeakTime < 0 {
		tp.PeakTime = 0
	}
}

// TypeName, Class and Name let params sheets select these parameters as "Timing"
func (tp *Params) TypeName() string { return "Timing" }
func (tp *Params) Class() string    { return "" }
func (tp *Params) Name() string     { return "" }

// ApplyParams applies given parameter Sheet, calling Update if anything was set.
// If setMsg is true, a message is printed for each parameter that is set.
func (tp *Params) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(tp, setMsg)
	if app {
		tp.Update()
	}
	return app, err
}

// IsSameAs returns true if other would produce an identical region
func (tp *Params) IsSameAs(other *Params) bool {
	if other == nil {
		return false
	}
	return tp.Tau == other.Tau && tp.PeakTime == other.PeakTime && tp.Variant == other.Variant
}

// PreTraceNBytes is the per-synapse storage taken by the presynaptic trace
func (tp *Params) PreTraceNBytes() int {
	return 0
}

// NWeightTerms is the number of weight dependence terms the rule drives
func (tp *Params) NWeightTerms() int {
	return 1
}

// PeakSteps returns the peak time in timesteps of timestepUs microseconds.
// FixedPeak always returns 0.
func (tp *Params) PeakSteps(timestepUs uint32) uint32 {
	if tp.Variant == FixedPeak || timestepUs == 0 {
		return 0
	}
	return uint32(fixpt.Round(tp.PeakTime * 1000 / float32(timestepUs)))
}

// SinLUT generates the decay envelope table for timesteps of timestepUs microseconds
func (tp *Params) SinLUT(timestepUs uint32) lut.Table {
	rtau := (1 / tp.Tau) * (float32(timestepUs) / 1000)
	return lut.Generate(lut.SinSize, lut.SinShift, func(t float32) float32 {
		v := t * rtau
		return mat32.Exp(-v) * mat32.Pow(mat32.Cos(v), 20)
	})
}

// WriteParams writes the rule's region, [peak]? [table], and returns the
// table written.  TauLastEntry is updated from the table.
func (tp *Params) WriteParams(spec *mem.Spec, timestepUs uint32) lut.Table {
	if tp.Variant == ConfiguredPeak {
		spec.WriteUint32(tp.PeakSteps(timestepUs))
	}
	tbl := tp.SinLUT(timestepUs)
	spec.WriteInt16s(tbl)
	tp.TauLastEntry = tbl.Last()
	return tbl
}

// SDRAMUsage returns the size of the region written by WriteParams
func (tp *Params) SDRAMUsage() datasize.ByteSize {
	n := mem.Int16Words(lut.SinSize) * mem.WordBytes
	if tp.Variant == ConfiguredPeak {
		n += mem.WordBytes
	}
	return datasize.ByteSize(n)
}

// Provenance is a named value recorded about a generated region, with a
// flag for values that deserve the user's attention.
type Provenance struct {
	Names   []string
	Value   float32
	Report  bool
	Message string
}

// Provenance reports the last table entry written by WriteParams for the
// projection between the named populations.  A nonzero last entry means the
// table is too short to hold the whole envelope at this timestep.
func (tp *Params) Provenance(pre, post string) Provenance {
	top := fmt.Sprintf("%s_%s_STDP_%s", pre, post, RuleName)
	return Provenance{
		Names:  []string{top, "tau_last_entry"},
		Value:  tp.TauLastEntry,
		Report: tp.TauLastEntry > 0,
		Message: fmt.Sprintf("The last entry in the STDP exponential lookup table for the tau parameter of the %s between %s and %s was %v rather than 0, indicating that the lookup table was not big enough at this timestep and value.  Try reducing the parameter value, or increasing the timestep",
			RuleName, pre, post, tp.TauLastEntry),
	}
}
