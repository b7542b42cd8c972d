// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"fmt"
	"reflect"

	"github.com/emer/cerebellum/timing"
)

// synapse.Synapse holds the plastic state of one connection
type Synapse struct {
	Wt      int32           `desc:"synaptic weight, in fixed weight units (see weight.Params.Config)"`
	DWt     int32           `desc:"change in weight from the most recent update"`
	LastPre uint32          `desc:"time of the most recent presynaptic spike, in timesteps -- 0 if none yet"`
	NPre    uint32          `desc:"number of presynaptic spikes processed"`
	Trace   timing.PreTrace `desc:"presynaptic trace left by the most recent presynaptic spike"`
}

var SynapseVars = []string{"Wt", "DWt", "LastPre", "NPre"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*sy).Field(idx)
	switch v.Kind() {
	case reflect.Uint32:
		return float32(v.Uint())
	default:
		return float32(v.Int())
	}
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}

func (sy *Synapse) SetVarByIndex(idx int, val float32) {
	v := reflect.ValueOf(sy).Elem().Field(idx)
	switch v.Kind() {
	case reflect.Uint32:
		v.SetUint(uint64(val))
	default:
		v.SetInt(int64(val))
	}
}

// SetVarByName sets synapse variable to given value
func (sy *Synapse) SetVarByName(varNm string, val float32) error {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return err
	}
	sy.SetVarByIndex(i, val)
	return nil
}
