// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"github.com/emer/cerebellum/timing"
	"github.com/emer/cerebellum/weight"
)

// Dynamics drives the timing rule for the synapses onto one postsynaptic
// neuron.  Feedback spikes are recorded as they arrive; weight updates are
// deferred to the next presynaptic spike on each synapse, which replays
// every feedback spike since that synapse's previous presynaptic spike.
type Dynamics struct {
	Rule    *timing.Rule
	Weights *weight.Config
	Post    PostEvents
}

// NewDynamics returns dynamics for an initialised rule
func NewDynamics(rl *timing.Rule, wc *weight.Config) (*Dynamics, error) {
	if !rl.IsInitialised() {
		return nil, timing.ErrNotInitialised
	}
	dy := &Dynamics{Rule: rl, Weights: wc}
	dy.Post.Init(rl.InitialPostTrace())
	return dy, nil
}

// ProcessPostSpike records a feedback spike at time
func (dy *Dynamics) ProcessPostSpike(time uint32) {
	last := dy.Post.Last()
	tr := dy.Rule.AddPostSpike(time, last.Time, last.Trace)
	dy.Post.Add(time, tr)
}

// ProcessPreSpike applies all feedback spikes since the synapse's last
// presynaptic spike, then the presynaptic spike at time itself, and
// stores the resulting weight.
func (dy *Dynamics) ProcessPreSpike(sy *Synapse, time uint32) {
	rl := dy.Rule
	st := weight.NewState(sy.Wt, dy.Weights)

	prev, win := dy.Post.Window(sy.LastPre, time)
	for _, ev := range win {
		st = rl.ApplyPostSpike(ev.Time, ev.Trace, sy.LastPre, sy.Trace, prev.Time, prev.Trace, st)
		prev = ev
	}

	tr := rl.AddPreSpike(time, sy.LastPre, sy.Trace)
	last := dy.Post.Last()
	st = rl.ApplyPreSpike(time, tr, sy.LastPre, sy.Trace, last.Time, last.Trace, st)

	wt := st.Final()
	sy.DWt = wt - sy.Wt
	sy.Wt = wt
	sy.LastPre = time
	sy.Trace = tr
	sy.NPre++
}
