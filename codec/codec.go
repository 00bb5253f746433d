/*
Copyright 2011-2025 Frederic Langlet
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

// Package codec holds the three pure, per-code capability sets the
// parallel skeleton shares: a bit-cost function, a bit-emission
// function, and a decode state machine. This is the "polymorphism over
// codec" shape spec.md §9 recommends: a capability-set interface with
// compile-time dispatch, mirroring the way kanzi-go's entropy package
// keeps one EntropyEncoder/EntropyDecoder interface implemented by
// several concrete codecs (RiceGolombEncoder, HuffmanEncoder, ...) and
// dispatched through EntropyCodecFactory.
package codec

import (
	"fmt"

	"github.com/jeffwigger/eliaspack/bitstream"
	"github.com/jeffwigger/eliaspack/transform"
)

// Integer re-exports the element type constraint so callers only need
// to import one package for it.
type Integer = transform.Integer

// Coder is the capability set a codec provides to the shared planner
// and parallel encoder: the per-element bit cost (used by the planner's
// prefix sum), the bit emission (used by the parallel encoder), and the
// decode state machine (used by the serial decoder). Implementations
// must be pure and stateless, exactly like kanzi-go's IntTransform and
// ByteTransform contracts require of Forward/Inverse.
type Coder[T Integer] interface {
	// Name identifies the code for error messages and CodeType dispatch.
	Name() string

	// SmallBatch and LargeBatch are the codec-specific batch-size
	// constants the planner's sizing policy uses (spec.md §4.C).
	SmallBatch() uint32
	LargeBatch() uint32

	// Cost returns the number of bits Encode will write for x.
	Cost(x T) uint64

	// Encode writes x to w using exactly Cost(x) bits.
	Encode(w *bitstream.Writer, x T)

	// Decode consumes one codeword from r and returns the decoded value.
	Decode(r *bitstream.Reader) T
}

// CodeType identifies a codec for runtime dispatch, mirroring the
// uint32 constants kanzi-go's entropy.EntropyCodecFactory switches on
// (HUFFMAN_TYPE, RANGE_TYPE, ...).
type CodeType uint32

const (
	GammaCode CodeType = iota
	DeltaCode
	OmegaCode
)

// New dispatches a CodeType to a concrete Coder, mirroring
// entropy.NewEntropyEncoder/NewEntropyDecoder's switch-on-constant
// shape. Prefer the typed constructors (NewGamma, NewDelta, NewOmega)
// when the code is known at compile time; use this when it is only
// known at runtime (e.g. read from a config file or a CLI flag).
func New[T Integer](t CodeType) (Coder[T], error) {
	switch t {
	case GammaCode:
		return NewGamma[T](), nil
	case DeltaCode:
		return NewDelta[T](), nil
	case OmegaCode:
		return NewOmega[T](), nil
	default:
		return nil, fmt.Errorf("codec: unsupported code type %d", t)
	}
}
