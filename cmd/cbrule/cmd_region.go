// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
)

func newRegionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Write the binary timing and weight region to a file",
		Long: `Writes the region consumed by the engine: the timing section
([peak_time]? [sin table x 256]) followed by one weight section
([min, max, a2_plus, a2_minus]) per synapse type, as little-endian words.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			rg, _ := cfg.WriteRegion()
			if err := os.WriteFile(out, rg, 0644); err != nil {
				return fmt.Errorf("writing region: %w", err)
			}
			log.Info("region written", "file", out, "size", datasize.ByteSize(len(rg)).HumanReadable())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes\n", out, len(rg))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "cerebellum.region", "output file")
	return cmd
}
