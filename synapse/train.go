// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

// Train drives a set of synapses onto one postsynaptic neuron with regular
// spike trains: synapse i spikes every PreEvery steps offset by i, and the
// feedback spike arrives every PostEvery steps.  Successive calls to Run
// continue from where the previous one stopped.
type Train struct {
	Steps     uint32 `desc:"number of timesteps to run"`
	PreEvery  uint32 `def:"20" desc:"presynaptic inter-spike interval, in timesteps"`
	PostEvery uint32 `def:"150" desc:"feedback inter-spike interval, in timesteps -- 0 for none"`
	Time      Time   `view:"-" desc:"current time, carried across runs"`
}

func (tr *Train) Defaults() {
	tr.PreEvery = 20
	tr.PostEvery = 150
	tr.Time.Defaults()
}

// Run runs the train, returning the number of pre and feedback spikes processed
func (tr *Train) Run(dy *Dynamics, syns []Synapse) (nPre, nPost int) {
	if tr.PreEvery == 0 {
		tr.PreEvery = 1
	}
	tm := &tr.Time
	if tm.TimestepUs == 0 {
		tm.Defaults()
	}
	end := tm.Step + tr.Steps
	for tm.Step < end {
		tm.StepInc()
		t := tm.Step
		for i := range syns {
			if (t+uint32(i))%tr.PreEvery == 0 {
				dy.ProcessPreSpike(&syns[i], t)
				nPre++
			}
		}
		if tr.PostEvery > 0 && t%tr.PostEvery == 0 {
			dy.ProcessPostSpike(t)
			nPost++
		}
	}
	return
}
