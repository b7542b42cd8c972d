// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package timing implements the cerebellum spike-timing rule used for
supervised learning at parallel fiber synapses.

Presynaptic spikes always potentiate by a fixed amount.  Postsynaptic
spikes are treated as feedback (error) signals: each one depresses the
synapse by a sine-shaped envelope of the time since the last presynaptic
spike, which is zero until PeakTime and then follows a 256-entry
fixed-point table.

Params is the host side: it generates the table and writes the region.
Rule is the engine side: it reads the region once with Initialise and
then evaluates spike events against the table.  The region layout is

	[peak_time: uint32]?  [sin table: int16 x 256]

where the peak time word is present only for the ConfiguredPeak variant.
*/
package timing
