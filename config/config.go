// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the parameters of a cerebellum rule run from YAML
// files, environment variables and named param sets.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/emer/cerebellum/timing"
	"github.com/emer/cerebellum/weight"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to write a region and drive the rule
type Config struct {
	// Timing are the timing rule parameters
	Timing timing.Params `json:"timing" yaml:"timing"`

	// Weight are the additive weight dependence parameters
	Weight weight.Params `json:"weight" yaml:"weight"`

	// TimestepUs is the simulation timestep in microseconds
	TimestepUs uint32 `json:"timestep_us" yaml:"timestep_us"`

	// WeightScale is the fixed weight value that represents a weight of 1.0
	WeightScale float32 `json:"weight_scale" yaml:"weight_scale"`

	// NSynapseTypes is the number of synapse types sharing the weight dependence
	NSynapseTypes int `json:"n_synapse_types" yaml:"n_synapse_types"`

	// ParamSet names an entry in ParamSets applied on top of the loaded values
	ParamSet string `json:"param_set,omitempty" yaml:"param_set,omitempty"`

	// LogLevel is "info" (default), "debug" or "trace"
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default returns a Config with default parameters
func Default() *Config {
	cfg := &Config{
		TimestepUs:    1000,
		WeightScale:   1024,
		NSynapseTypes: 1,
		LogLevel:      "info",
	}
	cfg.Timing.Defaults()
	cfg.Weight.Defaults()
	return cfg
}

// LoadFromFile loads a Config from a YAML file, on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Timing.Update()
	cfg.Weight.Update()
	return cfg, nil
}

// Load returns the defaults, or the file at path if path is not empty,
// with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can produce a usable region
func (cf *Config) Validate() error {
	if cf.TimestepUs == 0 {
		return fmt.Errorf("timestep_us must be positive")
	}
	if cf.WeightScale <= 0 {
		return fmt.Errorf("weight_scale must be positive, got %v", cf.WeightScale)
	}
	if cf.NSynapseTypes < 1 {
		return fmt.Errorf("n_synapse_types must be at least 1, got %d", cf.NSynapseTypes)
	}
	if cf.Timing.Variant < 0 || cf.Timing.Variant >= timing.VariantN {
		return fmt.Errorf("invalid timing variant: %v", cf.Timing.Variant)
	}
	if cf.ParamSet != "" {
		if _, ok := ParamSets[cf.ParamSet]; !ok {
			return fmt.Errorf("unknown param set: %s", cf.ParamSet)
		}
	}
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cf.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", cf.LogLevel)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CEREBELLUM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CEREBELLUM_TIMESTEP"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("CEREBELLUM_TIMESTEP: %w", err)
		}
		cfg.TimestepUs = uint32(n)
	}
	if v := os.Getenv("CEREBELLUM_PARAM_SET"); v != "" {
		cfg.ParamSet = v
	}
	return nil
}

// JsonToParams reformats json output to suitable params display output
func JsonToParams(b []byte) string {
	if len(b) == 0 {
		return "\n"
	}
	br := strings.Replace(string(b), `"`, ``, -1)
	br = strings.Replace(br, ",\n", "", -1)
	br = strings.Replace(br, "{\n", "{", -1)
	br = strings.Replace(br, "} ", "}\n  ", -1)
	br = strings.Replace(br, "\n }", " }", -1)
	br = strings.Replace(br, "\n  }\n", " }", -1)
	return br[1:] + "\n"
}

// AllParams returns a listing of all parameters
func (cf *Config) AllParams() string {
	str := "/////////////////////////////////////////////////\nRule: " + timing.RuleName + "\n"
	b, _ := json.MarshalIndent(&cf.Timing, "", " ")
	str += "Timing: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&cf.Weight, "", " ")
	str += "Weight: {\n " + JsonToParams(b)
	str += fmt.Sprintf("TimestepUs: %d  WeightScale: %g  NSynapseTypes: %d\n", cf.TimestepUs, cf.WeightScale, cf.NSynapseTypes)
	return str
}
