// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synapse is a minimal host for the timing rule: per-synapse plastic
state, the postsynaptic feedback spike history, and the deferred update
that replays feedback spikes at each presynaptic spike.  Spike scheduling
is left to the caller, which hands in spike times directly.
*/
package synapse
