// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/emer/cerebellum/synapse"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/spf13/cobra"
)

// LogPrec is precision for saving float values in tables
const LogPrec = 4

func newCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Measure weight change against feedback spike delay",
		Long: `Runs a pairing protocol: for each delay, a fresh synapse receives
presynaptic spikes every --interval steps, each followed by a feedback
spike after the delay.  Prints the net weight change per delay.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			rl, wcs, err := cfg.Build(log)
			if err != nil {
				return err
			}
			max, _ := cmd.Flags().GetUint32("max")
			step, _ := cmd.Flags().GetUint32("step")
			pr := synapse.Pairing{}
			pr.Defaults()
			pr.Reps, _ = cmd.Flags().GetInt("reps")
			pr.Interval, _ = cmd.Flags().GetUint32("interval")
			initFrac, _ := cmd.Flags().GetFloat32("init")
			pr.InitWt = int32(initFrac * cfg.WeightScale)
			pr.Delays = synapse.DelayRange(max, step)

			pts, err := pr.Run(rl, &wcs[0])
			if err != nil {
				return err
			}
			dt := &etable.Table{}
			ConfigCurveTable(dt)
			FillCurveTable(dt, pts, cfg.WeightScale)
			if out, _ := cmd.Flags().GetString("csv"); out != "" {
				fh, err := os.Create(out)
				if err != nil {
					return err
				}
				defer fh.Close()
				if err := dt.WriteCSV(fh, etable.Comma, etable.Headers); err != nil {
					return fmt.Errorf("writing curve: %w", err)
				}
				log.Info("curve written", "file", out, "rows", dt.Rows)
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%8s\t%8s\t%10s\n", "delay", "dwt", "dwt_norm")
			for row := 0; row < dt.Rows; row++ {
				fmt.Fprintf(w, "%8d\t%8d\t%10.4f\n", int(dt.CellFloat("Delay", row)),
					int(dt.CellFloat("DWt", row)), dt.CellFloat("DWtNorm", row))
			}
			return nil
		},
	}
	cmd.Flags().Uint32("max", 400, "largest delay, in timesteps")
	cmd.Flags().Uint32("step", 10, "delay increment, in timesteps")
	cmd.Flags().Int("reps", 1, "pairs per delay")
	cmd.Flags().Uint32("interval", 1000, "timesteps between presynaptic spikes")
	cmd.Flags().Float32("init", 0.5, "initial weight, as a fraction of the weight scale")
	cmd.Flags().String("csv", "", "write the curve as CSV to this file instead of printing it")
	return cmd
}

// ConfigCurveTable sets the columns of the weight change curve table
func ConfigCurveTable(dt *etable.Table) {
	dt.SetMetaData("name", "CurveTable")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Delay", etensor.INT64, nil, nil},
		{"DWt", etensor.INT64, nil, nil},
		{"DWtNorm", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// FillCurveTable writes one row per delay, with the weight change also
// expressed as a fraction of the weight scale
func FillCurveTable(dt *etable.Table, pts []synapse.Point, scale float32) {
	dt.SetNumRows(len(pts))
	for i, pt := range pts {
		dt.SetCellFloat("Delay", i, float64(pt.Delay))
		dt.SetCellFloat("DWt", i, float64(pt.DWt))
		dt.SetCellFloat("DWtNorm", i, float64(pt.DWt)/float64(scale))
	}
}
