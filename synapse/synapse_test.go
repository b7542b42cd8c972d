// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/emer/cerebellum/mem"
	"github.com/emer/cerebellum/timing"
	"github.com/emer/cerebellum/weight"
)

// testRule has the default envelope at 1 msec timesteps: peak at 100 steps,
// table entry 0 = fixpt.One.
func testRule(t *testing.T) (*timing.Rule, *weight.Config) {
	tp := timing.Params{}
	tp.Defaults()
	sp := mem.NewSpec()
	tp.WriteParams(sp, 1000)
	rl := timing.NewRule(tp.Variant)
	rl.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, err := rl.Initialise(sp.Region().Start()); err != nil {
		t.Fatal(err)
	}
	wp := weight.Params{}
	wp.Defaults()
	wc := wp.Config(1024) // A2Plus 102, A2Minus 512
	return rl, &wc
}

func TestDynamics(t *testing.T) {
	rl, wc := testRule(t)
	dy, err := NewDynamics(rl, wc)
	if err != nil {
		t.Fatal(err)
	}
	sy := &Synapse{Wt: 512}

	dy.ProcessPreSpike(sy, 10)
	if sy.Wt != 614 || sy.DWt != 102 || sy.LastPre != 10 || sy.NPre != 1 {
		t.Errorf("after pre spike: %+v", sy)
	}

	dy.ProcessPostSpike(110) // at the peak: full depression
	dy.ProcessPreSpike(sy, 200)
	if sy.Wt != 614-512+102 {
		t.Errorf("after depression at peak: %+v", sy)
	}

	dy.ProcessPostSpike(250) // before the peak: no depression
	dy.ProcessPreSpike(sy, 300)
	if sy.Wt != 306 || sy.DWt != 102 {
		t.Errorf("after feedback before peak: %+v", sy)
	}

	dy.ProcessPostSpike(300) // coincident with the last pre spike
	dy.ProcessPreSpike(sy, 400)
	if sy.DWt != 102 {
		t.Errorf("coincident feedback spike should not depress: %+v", sy)
	}
}

func TestDynamicsUninitialised(t *testing.T) {
	_, wc := testRule(t)
	_, err := NewDynamics(timing.NewRule(timing.FixedPeak), wc)
	if !errors.Is(err, timing.ErrNotInitialised) {
		t.Errorf("expected ErrNotInitialised, got %v", err)
	}
}

func TestPostEvents(t *testing.T) {
	pe := PostEvents{}
	pe.Init(timing.PostTrace{})
	for i := uint32(1); i <= 20; i++ {
		pe.Add(i*10, timing.PostTrace{})
	}
	if len(pe.Events) != MaxPostEvents {
		t.Fatalf("history len: %v", len(pe.Events))
	}
	if pe.Events[0].Time != 50 || pe.Last().Time != 200 {
		t.Errorf("oldest %v, newest %v", pe.Events[0].Time, pe.Last().Time)
	}

	prev, win := pe.Window(100, 130)
	if prev.Time != 100 || len(win) != 3 || win[0].Time != 110 || win[2].Time != 130 {
		t.Errorf("window (100, 130]: prev %v, %v", prev.Time, win)
	}
	prev, win = pe.Window(200, 300)
	if prev.Time != 200 || len(win) != 0 {
		t.Errorf("empty window: prev %v, %v", prev.Time, win)
	}

	// events at or before begin have been dropped
	prev, win = pe.Window(20, 200)
	if prev.Time != 0 || len(win) != MaxPostEvents || win[0].Time != 50 {
		t.Errorf("window past dropped history: prev %v, events %v", prev.Time, win)
	}
}

func TestSynapseVars(t *testing.T) {
	sy := &Synapse{Wt: 300, DWt: -20, LastPre: 77}
	for i, nm := range SynapseVars {
		v, err := sy.VarByName(nm)
		if err != nil {
			t.Fatal(err)
		}
		if v != sy.VarByIndex(i) {
			t.Errorf("%s: %v vs %v", nm, v, sy.VarByIndex(i))
		}
	}
	if v, _ := sy.VarByName("DWt"); v != -20 {
		t.Errorf("DWt: %v", v)
	}
	if err := sy.SetVarByName("LastPre", 12); err != nil || sy.LastPre != 12 {
		t.Errorf("SetVarByName: %v %v", sy.LastPre, err)
	}
	if _, err := sy.VarByName("Moment"); err == nil {
		t.Errorf("expected error for unknown var")
	}
}

func TestPairing(t *testing.T) {
	rl, wc := testRule(t)
	pr := Pairing{}
	pr.Defaults()
	pr.Delays = []uint32{0, 50, 100}
	pr.InitWt = 512
	pts, err := pr.Run(rl, wc)
	if err != nil {
		t.Fatal(err)
	}
	cors := []int32{204, 204, -308}
	for i, pt := range pts {
		if pt.Delay != pr.Delays[i] || pt.DWt != cors[i] {
			t.Errorf("delay %v: got %v, want %v", pt.Delay, pt.DWt, cors[i])
		}
	}

	pr.Delays = []uint32{pr.Interval}
	if _, err := pr.Run(rl, wc); err == nil {
		t.Errorf("expected error for delay at interval")
	}
	pr.Delays = []uint32{10}
	pr.Reps = 0
	if _, err := pr.Run(rl, wc); err == nil {
		t.Errorf("expected error for zero reps")
	}
}

func TestDelayRange(t *testing.T) {
	ds := DelayRange(100, 25)
	if len(ds) != 5 || ds[4] != 100 {
		t.Errorf("DelayRange: %v", ds)
	}
}

func TestTime(t *testing.T) {
	tm := NewTime()
	for i := 0; i < 5; i++ {
		tm.StepInc()
	}
	if tm.Step != 5 {
		t.Errorf("step: %v", tm.Step)
	}
	if tm.StepsFromMsec(100) != 100 {
		t.Errorf("steps from msec: %v", tm.StepsFromMsec(100))
	}
	tm.Reset()
	if tm.Step != 0 || tm.Time != 0 {
		t.Errorf("reset: %+v", tm)
	}
}

func TestTrain(t *testing.T) {
	rl, wc := testRule(t)
	dy, err := NewDynamics(rl, wc)
	if err != nil {
		t.Fatal(err)
	}
	syns := make([]Synapse, 4)
	for i := range syns {
		syns[i].Wt = 512
	}
	tr := Train{}
	tr.Defaults()
	tr.Steps = 1000
	nPre, nPost := tr.Run(dy, syns)
	if nPre != 4*50 || nPost != 6 {
		t.Errorf("spike counts: %d pre, %d post", nPre, nPost)
	}
	for i := range syns {
		if syns[i].NPre != 50 {
			t.Errorf("synapse %d: %d pre spikes", i, syns[i].NPre)
		}
		if syns[i].Wt < wc.Min || syns[i].Wt > wc.Max {
			t.Errorf("synapse %d weight out of range: %v", i, syns[i].Wt)
		}
	}
}

func TestTrainContinues(t *testing.T) {
	rl, wc := testRule(t)
	dy, err := NewDynamics(rl, wc)
	if err != nil {
		t.Fatal(err)
	}
	syns := make([]Synapse, 1)
	syns[0].Wt = 512
	tr := Train{}
	tr.Defaults()
	tr.Steps = 300
	tr.Run(dy, syns)
	last := syns[0].LastPre
	nPre, nPost := tr.Run(dy, syns)
	if tr.Time.Step != 600 {
		t.Errorf("step: %d", tr.Time.Step)
	}
	if nPre != 15 || nPost != 2 {
		t.Errorf("second run counts: %d pre, %d post", nPre, nPost)
	}
	if syns[0].LastPre <= last {
		t.Errorf("pre time went backwards: %d after %d", syns[0].LastPre, last)
	}
}
