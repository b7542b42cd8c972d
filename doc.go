// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cerebellum is the overall repository for the cerebellum spike-timing
plasticity rule: parallel-fiber synapses onto a Purkinje cell are potentiated
by a fixed amount on every presynaptic spike, and depressed on every climbing
fiber (feedback) spike by an amount read from a sine-shaped envelope of the
time since the last presynaptic spike, gated by a peak time.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* timing: the rule itself -- region initialization, the decay evaluator,
the four spike-event handlers, and the host-side parameters that generate
the envelope table and write the region.

* weight: the additive, single-term weight dependence the rule accumulates into.

* lut, fixpt, mem: envelope lookup tables, 11-bit fixed-point arithmetic, and
little-endian reading and writing of configuration regions.

* synapse: a minimal host that keeps per-synapse and feedback spike history
and drives the rule, plus pairing and spike-train protocols.

* config, logging: YAML configuration with named param sets, and leveled logging.

* cmd/cbrule: command-line tool to write regions, print tables, and run the
protocols.  examples/bench is a standalone benchmark.
*/
package cerebellum
