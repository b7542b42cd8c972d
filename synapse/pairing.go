// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"fmt"

	"github.com/emer/cerebellum/timing"
	"github.com/emer/cerebellum/weight"
)

// Pairing is a protocol that pairs presynaptic spikes with feedback spikes
// at a range of delays, measuring the resulting weight change per delay.
type Pairing struct {
	Delays   []uint32 `desc:"feedback spike delays after each presynaptic spike, in timesteps"`
	Reps     int      `def:"1" min:"1" desc:"number of pre / feedback pairs per delay"`
	Interval uint32   `def:"1000" desc:"timesteps between successive presynaptic spikes -- must exceed every delay"`
	InitWt   int32    `desc:"starting weight of the synapse for every delay"`
}

func (pr *Pairing) Defaults() {
	pr.Reps = 1
	pr.Interval = 1000
}

// Point is the weight change measured for one delay
type Point struct {
	Delay uint32
	DWt   int32
}

// DelayRange returns delays from 0 up to max inclusive, in steps of step
func DelayRange(max, step uint32) []uint32 {
	if step == 0 {
		step = 1
	}
	var ds []uint32
	for d := uint32(0); d <= max; d += step {
		ds = append(ds, d)
	}
	return ds
}

// Run runs the protocol on a fresh synapse for each delay.  Presynaptic
// spikes occur every Interval steps; a final presynaptic spike after the
// last pair applies the outstanding feedback spikes.
func (pr *Pairing) Run(rl *timing.Rule, wc *weight.Config) ([]Point, error) {
	if pr.Reps < 1 {
		return nil, fmt.Errorf("pairing: reps must be at least 1, got %d", pr.Reps)
	}
	pts := make([]Point, 0, len(pr.Delays))
	for _, d := range pr.Delays {
		if d >= pr.Interval {
			return nil, fmt.Errorf("pairing: delay %d not below interval %d", d, pr.Interval)
		}
		dy, err := NewDynamics(rl, wc)
		if err != nil {
			return nil, err
		}
		sy := &Synapse{Wt: pr.InitWt}
		tm := NewTime()
		end := uint32(pr.Reps+1) * pr.Interval
		for tm.Step <= end {
			t := tm.Step
			if t > 0 && t%pr.Interval == 0 {
				dy.ProcessPreSpike(sy, t)
			}
			if t >= pr.Interval+d && (t-d)%pr.Interval == 0 && t-d < end {
				dy.ProcessPostSpike(t)
			}
			tm.StepInc()
		}
		pts = append(pts, Point{Delay: d, DWt: sy.Wt - pr.InitWt})
	}
	return pts, nil
}
