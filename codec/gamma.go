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

// gammaSmallBatch and gammaLargeBatch are the planner's sizing
// constants for Elias gamma (spec.md §4.C).
const (
	gammaSmallBatch uint32 = 50
	gammaLargeBatch uint32 = 1000
)

// Gamma implements Coder[T] for Elias gamma: n zero bits followed by
// the (n+1)-bit binary representation of x, where n = floor(log2(x)).
type Gamma[T Integer] struct{}

// NewGamma returns an Elias gamma Coder for element type T.
func NewGamma[T Integer]() Coder[T] {
	return Gamma[T]{}
}

func (Gamma[T]) Name() string { return "gamma" }

func (Gamma[T]) SmallBatch() uint32 { return gammaSmallBatch }
func (Gamma[T]) LargeBatch() uint32 { return gammaLargeBatch }

func (Gamma[T]) Cost(x T) uint64 {
	n := internal.Ilog2(uint64(x))
	return uint64(2*n + 1)
}

func (Gamma[T]) Encode(w *bitstream.Writer, x T) {
	v := uint64(x)
	n := internal.Ilog2(v)
	w.WriteZeros(n)
	w.WriteBits(v, n+1)
}

func (Gamma[T]) Decode(r *bitstream.Reader) T {
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
	return T(acc)
}
