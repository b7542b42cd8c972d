// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/emer/emergent/v2/params"
)

// RuleSheet is the name of the sheet in each param set that applies to
// the timing and weight parameters
const RuleSheet = "Rule"

// ParamSets are the named parameter sets.  The set named by Config.ParamSet
// is applied on top of the values loaded from file, so a run can be varied
// without editing the file.  Base restores the values the examples use.
var ParamSets = params.Sets{
	"Base": {Desc: "envelope and weight dependence used in the cerebellum learning examples", Sheets: params.Sheets{
		RuleSheet: &params.Sheet{
			{Sel: "Timing", Desc: "envelope used in the cerebellum learning examples",
				Params: params.Params{
					"Timing.Tau":      "20",
					"Timing.PeakTime": "100",
				}},
			{Sel: "Weight", Desc: "depression dominates so errors drive weights down",
				Params: params.Params{
					"Weight.APlus":  "0.1",
					"Weight.AMinus": "0.5",
				}},
		},
	}},
	"EarlyPeak": {Desc: "feedback arriving 50 msec after the parallel fiber spike depresses most", Sheets: params.Sheets{
		RuleSheet: &params.Sheet{
			{Sel: "Timing", Desc: "earlier peak",
				Params: params.Params{
					"Timing.PeakTime": "50",
				}},
		},
	}},
	"Balanced": {Desc: "equal potentiation and depression", Sheets: params.Sheets{
		RuleSheet: &params.Sheet{
			{Sel: "Weight", Desc: "equal potentiation and depression",
				Params: params.Params{
					"Weight.APlus":  "0.1",
					"Weight.AMinus": "0.1",
				}},
		},
	}},
	"SlowDecay": {Desc: "longer envelope -- watch the tau_last_entry provenance", Sheets: params.Sheets{
		RuleSheet: &params.Sheet{
			{Sel: "Timing", Desc: "longer envelope",
				Params: params.Params{
					"Timing.Tau": "50",
				}},
		},
	}},
}

// ApplyParams applies cf.ParamSet, if any, to the timing and weight parameters.
// If setMsg is true, a message is printed for each parameter that is set.
func (cf *Config) ApplyParams(setMsg bool) error {
	if cf.ParamSet == "" {
		return nil
	}
	return cf.applySet(cf.ParamSet, setMsg)
}

func (cf *Config) applySet(name string, setMsg bool) error {
	set, ok := ParamSets[name]
	if !ok {
		return fmt.Errorf("unknown param set: %s", name)
	}
	sheet, err := set.SheetByNameTry(RuleSheet)
	if err != nil {
		return fmt.Errorf("param set %s: %w", name, err)
	}
	if _, err := cf.Timing.ApplyParams(sheet, setMsg); err != nil {
		return fmt.Errorf("param set %s: %w", name, err)
	}
	if _, err := cf.Weight.ApplyParams(sheet, setMsg); err != nil {
		return fmt.Errorf("param set %s: %w", name, err)
	}
	return nil
}
