// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cbrule generates, inspects and exercises cerebellum timing rule regions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/emer/cerebellum/config"
	"github.com/emer/cerebellum/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cbrule",
		Short: "Cerebellum timing rule tool",
		Long: `cbrule writes and inspects the configuration region of the cerebellum
spike-timing rule, and runs small protocols against it.

Parameters come from the defaults, an optional YAML file (--config),
environment variables (CEREBELLUM_*), and a named param set (--params).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("params", "", "named param set to apply: "+paramSetNames())
	rootCmd.PersistentFlags().String("log-level", "", "log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("param-msg", false, "print each parameter set by --params")

	rootCmd.AddCommand(
		newLUTCmd(),
		newRegionCmd(),
		newCurveCmd(),
		newBenchCmd(),
	)

	return rootCmd
}

func paramSetNames() string {
	nms := make([]string, 0, len(config.ParamSets))
	for nm := range config.ParamSets {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return strings.Join(nms, ", ")
}

// setup loads the config named by the persistent flags and builds the logger
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if ps, _ := cmd.Flags().GetString("params"); ps != "" {
		cfg.ParamSet = ps
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	setMsg, _ := cmd.Flags().GetBool("param-msg")
	if err := cfg.ApplyParams(setMsg); err != nil {
		return nil, nil, err
	}
	log := logging.NewLogger(cfg.LogLevel, os.Stderr)
	return cfg, log, nil
}
