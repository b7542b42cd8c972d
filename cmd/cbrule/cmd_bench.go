// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/emer/cerebellum/synapse"
	"github.com/emer/emergent/v2/timer"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time spike processing over regular spike trains",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			rl, wcs, err := cfg.Build(log)
			if err != nil {
				return err
			}
			nsyn, _ := cmd.Flags().GetInt("synapses")
			if nsyn < 0 {
				return fmt.Errorf("--synapses must not be negative, got %d", nsyn)
			}
			tr := synapse.Train{}
			tr.Defaults()
			tr.Steps, _ = cmd.Flags().GetUint32("steps")
			tr.PreEvery, _ = cmd.Flags().GetUint32("pre-every")
			tr.PostEvery, _ = cmd.Flags().GetUint32("post-every")

			dy, err := synapse.NewDynamics(rl, &wcs[0])
			if err != nil {
				return err
			}
			syns := make([]synapse.Synapse, nsyn)
			for i := range syns {
				syns[i].Wt = int32(cfg.WeightScale / 2)
			}
			tmr := timer.Time{}
			tmr.Start()
			nPre, nPost := tr.Run(dy, syns)
			tmr.Stop()
			perPre := time.Duration(0)
			if nPre > 0 {
				perPre = tmr.Total / time.Duration(nPre)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Took %v for %d pre and %d feedback spikes over %d steps, avg per synapse update: %v\n",
				tmr.Total, nPre, nPost, tr.Steps, perPre)
			return nil
		},
	}
	cmd.Flags().Int("synapses", 1000, "number of synapses onto the postsynaptic neuron")
	cmd.Flags().Uint32("steps", 10000, "timesteps to run")
	cmd.Flags().Uint32("pre-every", 20, "presynaptic inter-spike interval, in timesteps")
	cmd.Flags().Uint32("post-every", 150, "feedback inter-spike interval, in timesteps")
	return cmd
}
