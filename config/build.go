// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"log/slog"

	"github.com/c2h5oh/datasize"
	"github.com/emer/cerebellum/lut"
	"github.com/emer/cerebellum/mem"
	"github.com/emer/cerebellum/timing"
	"github.com/emer/cerebellum/weight"
)

// WriteRegion writes the timing section followed by the weight section,
// returning the region and the envelope table written.
func (cf *Config) WriteRegion() (mem.Region, lut.Table) {
	sp := mem.NewSpec()
	tbl := cf.Timing.WriteParams(sp, cf.TimestepUs)
	cf.Weight.WriteParams(sp, cf.WeightScale, cf.NSynapseTypes)
	return sp.Region(), tbl
}

// SDRAMUsage returns the size of the region written by WriteRegion
func (cf *Config) SDRAMUsage() datasize.ByteSize {
	return cf.Timing.SDRAMUsage() + cf.Weight.SDRAMUsage(cf.NSynapseTypes)
}

// Build writes the region and reads it back the way the engine does:
// the timing rule first, then one weight config per synapse type.
func (cf *Config) Build(log *slog.Logger) (*timing.Rule, []weight.Config, error) {
	if err := cf.Validate(); err != nil {
		return nil, nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	rg, _ := cf.WriteRegion()
	rl := timing.NewRule(cf.Timing.Variant)
	rl.SetLogger(log)
	c, err := rl.Initialise(rg.Start())
	if err != nil {
		return nil, nil, err
	}
	wcs, c, err := weight.Initialise(c, cf.NSynapseTypes)
	if err != nil {
		return nil, nil, err
	}
	if c.Remaining() != 0 {
		return nil, nil, fmt.Errorf("config build: %d bytes left over in region", c.Remaining())
	}
	log.Info("region loaded", "size", datasize.ByteSize(len(rg)).HumanReadable(), "synapse_types", len(wcs))
	return rl, wcs, nil
}
