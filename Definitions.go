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

// Package eliaspack implements a parallel, in-memory codec for
// sequences of integers, built on the Elias gamma, delta and omega
// universal codes.
//
// The implementation of the planning, encoding and decoding stages
// lives in sub-packages: bitstream holds the bit-level reader/writer,
// transform holds the pre/post value transforms, codec holds the
// per-code bit-cost/encode/decode implementations, planner computes
// chunk boundaries and bit offsets ahead of time, encoder runs the
// parallel write, and decoder runs the serial read.
package eliaspack

const (
	ErrMissingOptions  = 1
	ErrInvalidElement  = 2
	ErrInvalidThreads  = 3
	ErrInvalidCode     = 4
	ErrPlanningFailed  = 5
	ErrEncodingFailed  = 6
	ErrInvalidByteLen  = 7
	ErrInvalidElemCnt  = 8
	ErrUnknown         = 127
)

// Listener is an interface implemented by event processors that want
// to observe a Codec's planning, encoding and decoding stages.
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}
