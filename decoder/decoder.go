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

// Package decoder walks a packed buffer back into element values. It is
// single-threaded by design: each codeword's length depends on the
// bits of the one before it (there is no prefix sum to land on), so
// there is no boundary a second goroutine could start from without
// first decoding everything up to it anyway.
package decoder

import (
	"github.com/jeffwigger/eliaspack/bitstream"
	"github.com/jeffwigger/eliaspack/codec"
)

// Decode reads elementCount codewords from buf using c and returns
// them. It stops as soon as elementCount values have been produced or
// the buffer is exhausted, whichever comes first; trailing pad bits
// written by Encode are never interpreted as a codeword.
func Decode[T codec.Integer](buf []byte, elementCount int, c codec.Coder[T]) []T {
	r := bitstream.NewReader(buf)
	out := make([]T, 0, elementCount)

	for i := 0; i < elementCount; i++ {
		if r.Exhausted() {
			break
		}
		out = append(out, c.Decode(r))
	}
	return out
}
