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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwigger/eliaspack/bitstream"
)

// encodeAll writes every element of arr back to back into a single
// Writer spanning the whole cell buffer, returning the packed bytes.
func encodeAll[T Integer](t *testing.T, c Coder[T], arr []T) []byte {
	t.Helper()

	var totalBits uint64
	for _, x := range arr {
		totalBits += c.Cost(x)
	}

	cells := bitstream.NewCells(int((totalBits + 7) / 8))
	w := bitstream.NewWriter(cells, 0, totalBits)
	for _, x := range arr {
		c.Encode(w, x)
	}
	w.Flush()
	return cells.Bytes()
}

func totalCost[T Integer](c Coder[T], arr []T) uint64 {
	var sum uint64
	for _, x := range arr {
		sum += c.Cost(x)
	}
	return sum
}

func TestDeltaCompressedLengthScenario(t *testing.T) {
	c := NewDelta[int32]()
	arr := []int32{1, 2, 3, 4, 5, 10, 17}
	assert.Equal(t, uint64(36), totalCost[int32](c, arr))
}

func TestDeltaEncodedBytesScenario(t *testing.T) {
	c := NewDelta[int32]()
	arr := []int32{1, 2, 5, 10, 17}
	got := encodeAll(t, c, arr)
	assert.Equal(t, []byte{163, 72, 138, 32}, got)
}

func TestOmegaCompressedLengthScenario(t *testing.T) {
	c := NewOmega[int32]()
	arr := []int32{1, 2, 3, 4, 5, 10, 17}
	assert.Equal(t, uint64(37), totalCost[int32](c, arr))
}

func TestOmegaLargeCompressedLengthScenario(t *testing.T) {
	c := NewOmega[int64]()
	arr := []int64{1, 2, 3, 4, 5, 10, 17, 100, 10000, 100000, 1000000}
	assert.Equal(t, uint64(130), totalCost[int64](c, arr))
}

func TestOmegaEncodedBytesScenario(t *testing.T) {
	c := NewOmega[int32]()
	arr := []int32{1, 2, 5, 10, 17}
	got := encodeAll(t, c, arr)
	assert.Equal(t, []byte{74, 186, 82, 32}, got)
}

func TestGammaRoundTrip(t *testing.T) {
	c := NewGamma[int64]()
	arr := []int64{1, 2, 3, 4, 5, 10, 17, 100, 10000, 100000, 1000000}
	packed := encodeAll(t, c, arr)

	r := bitstream.NewReader(packed)
	for _, want := range arr {
		assert.Equal(t, want, c.Decode(r))
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	c := NewDelta[int32]()
	arr := []int32{1, 2, 3, 4, 5, 10, 17}
	packed := encodeAll(t, c, arr)

	r := bitstream.NewReader(packed)
	for _, want := range arr {
		assert.Equal(t, want, c.Decode(r))
	}
	assert.Equal(t, totalCost[int32](c, arr), r.Pos())
}

func TestOmegaRoundTrip(t *testing.T) {
	c := NewOmega[int32]()
	arr := []int32{1, 2, 3, 4, 5, 10, 17}
	packed := encodeAll(t, c, arr)

	r := bitstream.NewReader(packed)
	for _, want := range arr {
		assert.Equal(t, want, c.Decode(r))
	}
}

func TestNewDispatchesAllThreeCodes(t *testing.T) {
	g, err := New[int32](GammaCode)
	require.NoError(t, err)
	assert.Equal(t, "gamma", g.Name())

	d, err := New[int32](DeltaCode)
	require.NoError(t, err)
	assert.Equal(t, "delta", d.Name())

	o, err := New[int32](OmegaCode)
	require.NoError(t, err)
	assert.Equal(t, "omega", o.Name())

	_, err = New[int32](CodeType(99))
	assert.Error(t, err)
}
