// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weight

import (
	"errors"
	"testing"

	"github.com/emer/cerebellum/fixpt"
	"github.com/emer/cerebellum/mem"
	"github.com/emer/emergent/v2/params"
)

const scale = 1024

func testConfig() Config {
	wp := Params{}
	wp.Defaults()
	return wp.Config(scale)
}

func TestConfig(t *testing.T) {
	cf := testConfig()
	cor := Config{Min: 0, Max: 1024, A2Plus: 102, A2Minus: 512}
	if cf != cor {
		t.Errorf("config: got %+v, want %+v", cf, cor)
	}
}

func TestStateFinal(t *testing.T) {
	cf := testConfig()
	st := NewState(500, &cf)
	if st.Final() != 500 {
		t.Errorf("no change: %v", st.Final())
	}
	pot := st.ApplyPotentiation(fixpt.One)
	if pot.Final() != 500+102 {
		t.Errorf("one potentiation: %v", pot.Final())
	}
	if st.A2Plus != 0 {
		t.Errorf("ApplyPotentiation modified receiver")
	}
	dep := pot.ApplyDepression(fixpt.One / 2)
	if dep.Final() != 500+102-256 {
		t.Errorf("potentiation + half depression: %v", dep.Final())
	}
	lo := st.ApplyDepression(4 * fixpt.One)
	if lo.Final() != cf.Min {
		t.Errorf("clamp to min: %v", lo.Final())
	}
	hi := st.ApplyPotentiation(10 * fixpt.One)
	if hi.Final() != cf.Max {
		t.Errorf("clamp to max: %v", hi.Final())
	}
}

func TestRegion(t *testing.T) {
	wp := Params{}
	wp.Defaults()
	sp := mem.NewSpec()
	wp.WriteParams(sp, scale, 2)
	if int64(sp.Len()) != int64(wp.SDRAMUsage(2)) {
		t.Errorf("region len %v vs usage %v", sp.Len(), wp.SDRAMUsage(2))
	}
	cfgs, c, err := Initialise(sp.Region().Start(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining: %v", c.Remaining())
	}
	for i := range cfgs {
		if cfgs[i] != testConfig() {
			t.Errorf("type %d: %+v", i, cfgs[i])
		}
	}
	_, c, err = Initialise(sp.Region().Start(), 3)
	if !errors.Is(err, mem.ErrShortRegion) {
		t.Errorf("expected ErrShortRegion, got %v", err)
	}
	if c.Off != 0 {
		t.Errorf("failed initialise moved cursor: %v", c.Off)
	}
}

func TestApplyParams(t *testing.T) {
	wp := Params{}
	wp.Defaults()
	sheet := params.Sheet{
		{Sel: "Weight", Desc: "stronger depression",
			Params: params.Params{
				"Weight.AMinus":    "0.8",
				"Weight.Range.Max": "2",
			}},
	}
	app, err := wp.ApplyParams(&sheet, false)
	if err != nil {
		t.Fatal(err)
	}
	if !app {
		t.Errorf("sheet not applied")
	}
	if wp.AMinus != 0.8 || wp.Range.Max != 2 {
		t.Errorf("params: %+v", wp)
	}
}
