// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package weight implements the additive, single-term weight dependence
that timing rules feed with potentiation and depression magnitudes.

A timing rule never touches a weight directly: it accumulates fixed-point
magnitudes into a State, and the State's Final value is the new weight,
clamped to the configured range.
*/
package weight

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/emer/cerebellum/fixpt"
	"github.com/emer/cerebellum/mem"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/etable/v2/minmax"
)

// NWords is the number of region words per synapse type
const NWords = 4

// weight.Params are the additive weight dependence parameters, in weight units
type Params struct {
	Range  minmax.F32 `yaml:"range" view:"inline" desc:"range of allowed weight values -- [0, 1] by default"`
	APlus  float32    `yaml:"a_plus" def:"0.1" min:"0" desc:"weight change for one unit of potentiation (one presynaptic spike)"`
	AMinus float32    `yaml:"a_minus" def:"0.5" min:"0" desc:"weight change for one unit of depression, scaled by the timing rule's decay value"`
}

func (wp *Params) Defaults() {
	wp.Range.Min = 0
	wp.Range.Max = 1
	wp.APlus = 0.1
	wp.AMinus = 0.5
	wp.Update()
}

// Update must be called after any changes to parameters
func (wp *Params) Update() {
	if wp.Range.Max < wp.Range.Min {
		wp.Range.Min, wp.Range.Max = wp.Range.Max, wp.Range.Min
	}
}

// TypeName, Class and Name let params sheets select these parameters as "Weight"
func (wp *Params) TypeName() string { return "Weight" }
func (wp *Params) Class() string    { return "" }
func (wp *Params) Name() string     { return "" }

// ApplyParams applies given parameter Sheet, calling Update if anything was set.
func (wp *Params) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(wp, setMsg)
	if app {
		wp.Update()
	}
	return app, err
}

// Config returns the fixed-point form of the parameters, for weights
// represented in units where 1.0 equals scale.
func (wp *Params) Config(scale float32) Config {
	return Config{
		Min:     fixpt.Round(wp.Range.Min*scale),
		Max:     fixpt.Round(wp.Range.Max*scale),
		A2Plus:  fixpt.Round(wp.APlus*scale),
		A2Minus: fixpt.Round(wp.AMinus*scale),
	}
}

// WriteParams writes the region for nTypes synapse types sharing these parameters
func (wp *Params) WriteParams(spec *mem.Spec, scale float32, nTypes int) {
	cfg := wp.Config(scale)
	for i := 0; i < nTypes; i++ {
		cfg.write(spec)
	}
}

// SDRAMUsage returns the region size for nTypes synapse types
func (wp *Params) SDRAMUsage(nTypes int) datasize.ByteSize {
	return datasize.ByteSize(nTypes * NWords * mem.WordBytes)
}

// Config is the per-synapse-type weight dependence as read from a region.
// Min and Max are weights; A2Plus and A2Minus scale accumulated fixed-point magnitudes.
type Config struct {
	Min     int32
	Max     int32
	A2Plus  int32
	A2Minus int32
}

func (cf *Config) write(spec *mem.Spec) {
	spec.WriteInt32(cf.Min)
	spec.WriteInt32(cf.Max)
	spec.WriteInt32(cf.A2Plus)
	spec.WriteInt32(cf.A2Minus)
}

// Initialise reads nTypes configs from the region at c, returning them and
// the cursor advanced past them.
func Initialise(c mem.Cursor, nTypes int) ([]Config, mem.Cursor, error) {
	cfgs := make([]Config, nTypes)
	nc := c
	for i := range cfgs {
		cf := &cfgs[i]
		for _, fp := range []*int32{&cf.Min, &cf.Max, &cf.A2Plus, &cf.A2Minus} {
			v, cc, err := nc.Int32()
			if err != nil {
				return nil, c, fmt.Errorf("weight initialise: synapse type %d: %w", i, err)
			}
			*fp = v
			nc = cc
		}
	}
	return cfgs, nc, nil
}

// State accumulates potentiation and depression for one weight update.
// Methods return a new State, leaving the receiver unchanged.
type State struct {
	Initial int32
	A2Plus  int32
	A2Minus int32
	Cfg     *Config
}

// NewState starts an update of the given weight
func NewState(initial int32, cfg *Config) State {
	return State{Initial: initial, Cfg: cfg}
}

// ApplyPotentiation adds a fixed-point potentiation magnitude
func (st State) ApplyPotentiation(a2Plus int32) State {
	st.A2Plus += a2Plus
	return st
}

// ApplyDepression adds a fixed-point depression magnitude
func (st State) ApplyDepression(a2Minus int32) State {
	st.A2Minus += a2Minus
	return st
}

// Final returns the updated weight, clamped to the configured range
func (st State) Final() int32 {
	wt := st.Initial + fixpt.Mul(st.A2Plus, st.Cfg.A2Plus) - fixpt.Mul(st.A2Minus, st.Cfg.A2Minus)
	if wt < st.Cfg.Min {
		wt = st.Cfg.Min
	}
	if wt > st.Cfg.Max {
		wt = st.Cfg.Max
	}
	return wt
}
