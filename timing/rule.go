// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emer/cerebellum/fixpt"
	"github.com/emer/cerebellum/logging"
	"github.com/emer/cerebellum/lut"
	"github.com/emer/cerebellum/mem"
	"github.com/emer/cerebellum/weight"
)

var (
	// ErrInitialised is returned by a second call to Rule.Initialise
	ErrInitialised = errors.New("timing: rule already initialised")

	// ErrNotInitialised is returned when a rule is used before Initialise
	ErrNotInitialised = errors.New("timing: rule not initialised")
)

// PreTrace is the per-synapse state kept for the most recent presynaptic spike.
// It is empty: this rule keeps no presynaptic history.  A rule that needs
// history adds fields here and fills them in AddPreSpike; the host stores
// one PreTrace per synapse and hands it back unchanged.
type PreTrace struct{}

// PostTrace is the state kept for each feedback spike in the postsynaptic
// history.  It is empty for the same reason as PreTrace, and is filled by
// AddPostSpike when extended.
type PostTrace struct{}

// Rule is the cerebellum timing rule: every presynaptic spike potentiates
// by a fixed amount, and every feedback spike depresses by a sine-shaped
// envelope of the time since the last presynaptic spike.
//
// The envelope table and peak time are written once by Initialise and
// only read after, so a Rule may be shared by any number of synapses.
// PeakTime and Sin expose them read-only.
type Rule struct {
	Variant Variant

	peakTime uint32
	sin      lut.Table
	log      *slog.Logger
}

// NewRule returns an uninitialised rule of the given variant
func NewRule(v Variant) *Rule {
	return &Rule{Variant: v, log: slog.Default()}
}

// SetLogger sets the logger used for startup and per-event diagnostics
func (rl *Rule) SetLogger(log *slog.Logger) {
	rl.log = log
}

func (rl *Rule) logger() *slog.Logger {
	if rl.log == nil {
		return slog.Default()
	}
	return rl.log
}

// IsInitialised returns true once Initialise has succeeded
func (rl *Rule) IsInitialised() bool {
	return rl.sin != nil
}

// PeakTime returns the peak time read by Initialise, in timesteps
func (rl *Rule) PeakTime() uint32 {
	return rl.peakTime
}

// Sin returns a copy of the envelope table read by Initialise
func (rl *Rule) Sin() lut.Table {
	if rl.sin == nil {
		return nil
	}
	tbl := make(lut.Table, len(rl.sin))
	copy(tbl, rl.sin)
	return tbl
}

// Initialise reads the peak time (ConfiguredPeak only) and the envelope
// table from the region at c, returning the cursor advanced past them
// so the caller can continue with the next section.
func (rl *Rule) Initialise(c mem.Cursor) (mem.Cursor, error) {
	if rl.IsInitialised() {
		return c, ErrInitialised
	}
	log := rl.logger()
	log.Info("timing initialise: starting", "rule", RuleName, "variant", rl.Variant)
	nc := c
	peak := uint32(0)
	if rl.Variant == ConfiguredPeak {
		var err error
		peak, nc, err = nc.Uint32()
		if err != nil {
			return c, fmt.Errorf("timing initialise: peak time: %w", err)
		}
	}
	tbl, nc, err := lut.Copy(nc, lut.SinSize)
	if err != nil {
		return c, fmt.Errorf("timing initialise: sin table: %w", err)
	}
	rl.peakTime = peak
	rl.sin = tbl
	log.Info("timing initialise: completed successfully", "peak_time", peak, "bytes", nc.Off-c.Off)
	return nc, nil
}

// Decay returns the depression magnitude for a feedback spike arriving
// elapsed timesteps after the reference presynaptic spike: 0 before the
// peak time, then the envelope table at elapsed - PeakTime.
func (rl *Rule) Decay(elapsed uint32) int32 {
	if elapsed < rl.peakTime {
		return 0
	}
	return lut.Lookup(elapsed-rl.peakTime, lut.SinShift, rl.sin)
}

// InitialPostTrace returns the trace a postsynaptic history starts with
func (rl *Rule) InitialPostTrace() PostTrace {
	return PostTrace{}
}

// AddPostSpike returns the trace for a new feedback spike at time,
// given the previous feedback spike at lastTime.
func (rl *Rule) AddPostSpike(time, lastTime uint32, lastTrace PostTrace) PostTrace {
	rl.logger().Log(context.Background(), logging.LevelTrace, "timing add post spike", "delta_time", time-lastTime)
	return PostTrace{}
}

// AddPreSpike returns the trace for a new presynaptic spike at time,
// given the previous presynaptic spike at lastTime.
func (rl *Rule) AddPreSpike(time, lastTime uint32, lastTrace PreTrace) PreTrace {
	rl.logger().Log(context.Background(), logging.LevelTrace, "timing add pre spike", "delta_time", time-lastTime)
	return PreTrace{}
}

// ApplyPreSpike applies a presynaptic spike to the update state: a fixed,
// maximal potentiation regardless of timing or traces.
func (rl *Rule) ApplyPreSpike(time uint32, trace PreTrace, lastPreTime uint32, lastPreTrace PreTrace,
	lastPostTime uint32, lastPostTrace PostTrace, prev weight.State) weight.State {
	return prev.ApplyPotentiation(fixpt.One)
}

// ApplyPostSpike applies a feedback spike at time to the update state,
// depressing by Decay of the time since the last presynaptic spike.
// A feedback spike coincident with the last presynaptic spike leaves
// the state unchanged.
func (rl *Rule) ApplyPostSpike(time uint32, trace PostTrace, lastPreTime uint32, lastPreTrace PreTrace,
	lastPostTime uint32, lastPostTrace PostTrace, prev weight.State) weight.State {
	sinceLastPre := time - lastPreTime
	if sinceLastPre == 0 {
		return prev
	}
	decayed := rl.Decay(sinceLastPre)
	rl.logger().Debug("timing apply post spike", "time_since_last_pre", sinceLastPre, "decayed_sin", decayed)
	return prev.ApplyDepression(decayed)
}
