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

package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwigger/eliaspack/codec"
	"github.com/jeffwigger/eliaspack/encoder"
	"github.com/jeffwigger/eliaspack/planner"
)

func TestDecodeDeltaScenarioBytes(t *testing.T) {
	c := codec.NewDelta[int32]()
	got := Decode[int32]([]byte{163, 72, 138, 32}, 5, c)
	assert.Equal(t, []int32{1, 2, 5, 10, 17}, got)
}

func TestDecodeOmegaScenarioBytes(t *testing.T) {
	c := codec.NewOmega[int32]()
	got := Decode[int32]([]byte{74, 186, 82, 32}, 5, c)
	assert.Equal(t, []int32{1, 2, 5, 10, 17}, got)
}

func TestDecodeRoundTripsEncoderOutput(t *testing.T) {
	arr := make([]int64, 2000)
	for i := range arr {
		arr[i] = int64(i + 1)
	}

	for _, c := range []codec.Coder[int64]{codec.NewGamma[int64](), codec.NewDelta[int64](), codec.NewOmega[int64]()} {
		p, err := planner.Build[int64](arr, c, 5)
		require.NoError(t, err)

		packed, err := encoder.Encode[int64](arr, c, p)
		require.NoError(t, err)

		got := Decode[int64](packed, len(arr), c)
		assert.Equal(t, arr, got)
	}
}

func TestDecodeStopsAtElementCount(t *testing.T) {
	c := codec.NewGamma[int32]()
	arr := []int32{1, 2, 3, 4, 5}

	p, err := planner.Build[int32](arr, c, 2)
	require.NoError(t, err)
	packed, err := encoder.Encode[int32](arr, c, p)
	require.NoError(t, err)

	got := Decode[int32](packed, 3, c)
	assert.Equal(t, []int32{1, 2, 3}, got)
}
