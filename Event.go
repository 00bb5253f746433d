/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package eliaspack

import (
	"fmt"
	"time"
)

const (
	EvtPlanStart   = 0 // Chunk sizing and bit-cost prefix sum starts
	EvtPlanEnd     = 1 // Chunk sizing and bit-cost prefix sum ends
	EvtEncodeStart = 2 // Parallel chunk encoding starts
	EvtEncodeEnd   = 3 // Parallel chunk encoding ends
	EvtDecodeStart = 4 // Serial decoding starts
	EvtDecodeEnd   = 5 // Serial decoding ends
)

// Event describes one stage transition in a Codec's Compress or
// Decompress call.
type Event struct {
	eventType int
	size      int64
	elements  int
	eventTime time.Time
	msg       string
}

// NewEventFromString creates a new Event instance that wraps a message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// NewEvent creates a new Event instance carrying the encoded byte
// length and the element count observed at this stage transition.
func NewEvent(evtType int, size int64, elements int, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, elements: elements, eventTime: evtTime}
}

// Type returns the event type.
func (e *Event) Type() int {
	return e.eventType
}

// Time returns the time the event was created.
func (e *Event) Time() time.Time {
	return e.eventTime
}

// Size returns the byte length observed at this stage, if any.
func (e *Event) Size() int64 {
	return e.size
}

// Elements returns the element count observed at this stage, if any.
func (e *Event) Elements() int {
	return e.elements
}

// String returns a string representation of this event. If the event
// wraps a message, the message is returned; otherwise a string is
// built from the fields.
func (e *Event) String() string {
	if len(e.msg) > 0 {
		return e.msg
	}

	t := ""
	switch e.eventType {
	case EvtPlanStart:
		t = "PLAN_START"
	case EvtPlanEnd:
		t = "PLAN_END"
	case EvtEncodeStart:
		t = "ENCODE_START"
	case EvtEncodeEnd:
		t = "ENCODE_END"
	case EvtDecodeStart:
		t = "DECODE_START"
	case EvtDecodeEnd:
		t = "DECODE_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"elements\":%d, \"time\":%d }",
		t, e.size, e.elements, e.eventTime.UnixNano()/1000000)
}
