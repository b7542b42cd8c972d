// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

// synapse.Time counts simulation timesteps
type Time struct {
	Time       float32 `desc:"accumulated simulation time, in seconds"`
	Step       uint32  `desc:"timestep counter -- spike times are expressed in this unit"`
	TimestepUs uint32  `def:"1000" desc:"length of one timestep in microseconds"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimestepUs = 1000
}

// Reset resets the counters back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.TimestepUs == 0 {
		tm.Defaults()
	}
}

// StepInc advances one timestep
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time += float32(tm.TimestepUs) * 1.0e-6
}

// StepsFromMsec returns the number of timesteps in msec milliseconds
func (tm *Time) StepsFromMsec(msec float32) uint32 {
	return uint32(msec * 1000 / float32(tm.TimestepUs))
}
