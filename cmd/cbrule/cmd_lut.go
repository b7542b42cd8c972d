// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/emer/cerebellum/config"
	"github.com/emer/cerebellum/lut"
	"github.com/spf13/cobra"
)

func newLUTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lut",
		Short: "Print the generated envelope table and region layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			pre, _ := cmd.Flags().GetString("pre")
			post, _ := cmd.Flags().GetString("post")
			_, tbl := cfg.WriteRegion()
			printLUT(cmd.OutOrStdout(), cfg, tbl, pre, post)
			return nil
		},
	}
	cmd.Flags().String("pre", "granule", "presynaptic population label, for provenance")
	cmd.Flags().String("post", "purkinje", "postsynaptic population label, for provenance")
	return cmd
}

func printLUT(w io.Writer, cfg *config.Config, tbl lut.Table, pre, post string) {
	fmt.Fprint(w, cfg.AllParams())
	fmt.Fprintf(w, "\npeak: %d steps of %d us\n", cfg.Timing.PeakSteps(cfg.TimestepUs), cfg.TimestepUs)
	fmt.Fprintf(w, "region: timing %v + weight %v = %v\n\n",
		cfg.Timing.SDRAMUsage().HumanReadable(), cfg.Weight.SDRAMUsage(cfg.NSynapseTypes).HumanReadable(),
		cfg.SDRAMUsage().HumanReadable())
	for i, v := range tbl {
		if i%16 == 0 {
			fmt.Fprintf(w, "%4d:", i)
		}
		fmt.Fprintf(w, " %6d", v)
		if i%16 == 15 {
			fmt.Fprintln(w)
		}
	}
	pv := cfg.Timing.Provenance(pre, post)
	fmt.Fprintf(w, "\n%s/%s = %v\n", pv.Names[0], pv.Names[1], pv.Value)
	if pv.Report {
		fmt.Fprintf(w, "WARNING: %s\n", pv.Message)
	}
}
