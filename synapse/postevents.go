// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/emer/cerebellum/timing"

// MaxPostEvents is the number of feedback spikes kept per postsynaptic neuron
const MaxPostEvents = 16

// PostEvent is one feedback spike in the postsynaptic history
type PostEvent struct {
	Time  uint32
	Trace timing.PostTrace
}

// PostEvents is the bounded feedback spike history of one postsynaptic
// neuron, oldest first.  Entry 0 starts as the initial trace at time 0,
// so every window has a preceding event.
type PostEvents struct {
	Events []PostEvent
}

// Init resets the history to the single initial event
func (pe *PostEvents) Init(initial timing.PostTrace) {
	pe.Events = append(pe.Events[:0], PostEvent{Trace: initial})
}

// Last returns the most recent event
func (pe *PostEvents) Last() PostEvent {
	return pe.Events[len(pe.Events)-1]
}

// Add appends a new event, dropping the oldest when the history is full
func (pe *PostEvents) Add(time uint32, trace timing.PostTrace) {
	if len(pe.Events) == MaxPostEvents {
		copy(pe.Events, pe.Events[1:])
		pe.Events = pe.Events[:MaxPostEvents-1]
	}
	pe.Events = append(pe.Events, PostEvent{Time: time, Trace: trace})
}

// Window returns the events with begin < Time <= end, and the event
// immediately preceding them.  If the history no longer holds an event at
// or before begin, prev is the zero event (time 0, empty trace).
func (pe *PostEvents) Window(begin, end uint32) (prev PostEvent, win []PostEvent) {
	st := 0
	for st < len(pe.Events) && pe.Events[st].Time <= begin {
		st++
	}
	ed := st
	for ed < len(pe.Events) && pe.Events[ed].Time <= end {
		ed++
	}
	if st > 0 {
		prev = pe.Events[st-1]
	}
	return prev, pe.Events[st:ed]
}
