// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/cerebellum/timing"
	"github.com/emer/emergent/v2/params"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cerebellum.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.Tau != 20 || cfg.Timing.PeakTime != 100 || cfg.Timing.Variant != timing.ConfiguredPeak {
		t.Errorf("timing defaults: %+v", cfg.Timing)
	}
	if cfg.Weight.Range.Max != 1 || cfg.Weight.AMinus != 0.5 {
		t.Errorf("weight defaults: %+v", cfg.Weight)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
timing:
  tau: 30
  variant: FixedPeak
weight:
  a_plus: 0.2
  range:
    max: 2
timestep_us: 100
log_level: debug
`)
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.Tau != 30 || cfg.Timing.Variant != timing.FixedPeak {
		t.Errorf("timing: %+v", cfg.Timing)
	}
	if cfg.Timing.PeakTime != 100 {
		t.Errorf("unset field should keep its default: %v", cfg.Timing.PeakTime)
	}
	if cfg.Weight.APlus != 0.2 || cfg.Weight.Range.Max != 2 || cfg.Weight.AMinus != 0.5 {
		t.Errorf("weight: %+v", cfg.Weight)
	}
	if cfg.TimestepUs != 100 || cfg.LogLevel != "debug" {
		t.Errorf("run settings: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	path := writeFile(t, "timing:\n  variant: Sometimes\n")
	if _, err := LoadFromFile(path); err == nil {
		t.Errorf("expected error for unknown variant")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CEREBELLUM_TIMESTEP", "250")
	t.Setenv("CEREBELLUM_LOG_LEVEL", "trace")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TimestepUs != 250 || cfg.LogLevel != "trace" {
		t.Errorf("env overrides: %+v", cfg)
	}
}

func TestEnvBadTimestep(t *testing.T) {
	for _, v := range []string{"fast", "-5", "5000000000"} {
		t.Setenv("CEREBELLUM_TIMESTEP", v)
		if _, err := Load(""); err == nil {
			t.Errorf("CEREBELLUM_TIMESTEP=%s: expected error", v)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TimestepUs = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero timestep")
	}
	cfg = Default()
	cfg.ParamSet = "NoSuchSet"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for unknown param set")
	}
	cfg = Default()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for unknown log level")
	}
}

func TestApplyParams(t *testing.T) {
	cfg := Default()
	cfg.ParamSet = "EarlyPeak"
	if err := cfg.ApplyParams(false); err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.PeakTime != 50 {
		t.Errorf("EarlyPeak not applied: %v", cfg.Timing.PeakTime)
	}
	cfg.ParamSet = "Balanced"
	if err := cfg.ApplyParams(false); err != nil {
		t.Fatal(err)
	}
	if cfg.Weight.AMinus != 0.1 || cfg.Timing.PeakTime != 50 {
		t.Errorf("Balanced: %+v %+v", cfg.Weight, cfg.Timing)
	}
}

func TestParamSetsHaveRuleSheet(t *testing.T) {
	for nm, set := range ParamSets {
		if _, err := set.SheetByNameTry(RuleSheet); err != nil {
			t.Errorf("param set %s: %v", nm, err)
		}
	}
	cfg := Default()
	cfg.Timing.Tau = 35
	cfg.Weight.AMinus = 0.3
	cfg.ParamSet = "Base"
	if err := cfg.ApplyParams(false); err != nil {
		t.Fatal(err)
	}
	if cfg.Timing.Tau != 20 || cfg.Weight.AMinus != 0.5 {
		t.Errorf("Base not applied: %+v %+v", cfg.Timing, cfg.Weight)
	}
}

func TestParamSetMissingSheet(t *testing.T) {
	ParamSets["NoRuleSheet"] = &params.Set{Desc: "sheets for some other object", Sheets: params.Sheets{}}
	defer delete(ParamSets, "NoRuleSheet")
	cfg := Default()
	cfg.ParamSet = "NoRuleSheet"
	if err := cfg.ApplyParams(false); err == nil {
		t.Error("expected error for a param set without the rule sheet")
	}
}

func TestAllParams(t *testing.T) {
	str := Default().AllParams()
	for _, s := range []string{"Timing: {", "Weight: {", "PeakTime", "AMinus", "TimestepUs: 1000"} {
		if !strings.Contains(str, s) {
			t.Errorf("AllParams missing %q:\n%s", s, str)
		}
	}
}
