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

package codec

import (
	"github.com/jeffwigger/eliaspack/bitstream"
	"github.com/jeffwigger/eliaspack/internal"
)

// deltaSmallBatch and deltaLargeBatch are the planner's sizing
// constants for Elias delta (spec.md §4.C). Delta's shorter codewords
// for large values let the planner use a much bigger large batch than
// gamma and omega do.
const (
	deltaSmallBatch uint32 = 100
	deltaLargeBatch uint32 = 100000
)

// Delta implements Coder[T] for Elias delta: gamma-encode (n+1), where
// n = floor(log2(x)), then append the low n bits of x.
type Delta[T Integer] struct{}

// NewDelta returns an Elias delta Coder for element type T.
func NewDelta[T Integer]() Coder[T] {
	return Delta[T]{}
}

func (Delta[T]) Name() string { return "delta" }

func (Delta[T]) SmallBatch() uint32 { return deltaSmallBatch }
func (Delta[T]) LargeBatch() uint32 { return deltaLargeBatch }

func (Delta[T]) Cost(x T) uint64 {
	n := internal.Ilog2(uint64(x))
	l := internal.Ilog2(uint64(n) + 1)
	return uint64(2*l+1) + uint64(n)
}

func (Delta[T]) Encode(w *bitstream.Writer, x T) {
	v := uint64(x)
	n := internal.Ilog2(v)
	l := internal.Ilog2(uint64(n) + 1)

	w.WriteZeros(l)
	w.WriteBits(uint64(n)+1, l+1)

	if n > 0 {
		w.WriteBits(v&((uint64(1)<<n)-1), n)
	}
}

func (Delta[T]) Decode(r *bitstream.Reader) T {
	// Phase one: gamma-decode the (n+1)-bit-length prefix.
	width := uint(0)
	for {
		if r.Exhausted() {
			break
		}
		if r.ReadBit() == 1 {
			break
		}
		width++
	}

	acc := uint64(1)
	for i := uint(0); i < width; i++ {
		acc = (acc << 1) | uint64(r.ReadBit())
	}
	n := acc - 1

	// Phase two: the low n bits of x follow directly.
	suffix := uint64(0)
	for i := uint64(0); i < n; i++ {
		suffix = (suffix << 1) | uint64(r.ReadBit())
	}

	return T((uint64(1) << n) | suffix)
}
