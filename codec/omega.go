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

// omegaSmallBatch and omegaLargeBatch are the planner's sizing
// constants for Elias omega (spec.md §4.C).
const (
	omegaSmallBatch uint32 = 50
	omegaLargeBatch uint32 = 1000
)

// Omega implements Coder[T] for Elias omega: a chain of naturally-sized
// binary groups descending from x down to a value of 1, emitted
// smallest-group-first, terminated by a single 0 bit.
type Omega[T Integer] struct{}

// NewOmega returns an Elias omega Coder for element type T.
func NewOmega[T Integer]() Coder[T] {
	return Omega[T]{}
}

func (Omega[T]) Name() string { return "omega" }

func (Omega[T]) SmallBatch() uint32 { return omegaSmallBatch }
func (Omega[T]) LargeBatch() uint32 { return omegaLargeBatch }

func (Omega[T]) Cost(x T) uint64 {
	n := internal.Ilog2(uint64(x))
	bits := uint64(1) // terminator
	for n >= 1 {
		bits += uint64(n) + 1
		n = internal.Ilog2(uint64(n))
	}
	return bits
}

func (Omega[T]) Encode(w *bitstream.Writer, x T) {
	v := uint64(x)

	var groups []uint64
	for v != 1 {
		groups = append(groups, v)
		v = uint64(internal.Ilog2(v))
	}

	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		n := internal.Ilog2(g)
		w.WriteBits(g, n+1)
	}
	w.WriteBit(0)
}

func (Omega[T]) Decode(r *bitstream.Reader) T {
	n := uint64(1)
	for {
		if r.Exhausted() {
			return T(n)
		}
		if r.ReadBit() == 0 {
			return T(n)
		}

		val := uint64(1)
		for i := uint64(0); i < n; i++ {
			val = (val << 1) | uint64(r.ReadBit())
		}
		n = val
	}
}
