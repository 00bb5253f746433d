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

// Package encoder runs the plan the planner package produced: it hands
// out chunks of work to a fixed pool of goroutines one chunk at a time,
// so a goroutine that drew an unlucky run of wide codewords doesn't
// starve its siblings of later, cheaper chunks. This is a dynamic
// schedule, deliberately different from the planner's cyclic static
// assignment (planner.Build): the goroutine-per-task plus
// sync.WaitGroup plumbing follows kanzi-go's BWT.inverseBiPSIv2, but
// the work distribution itself is a channel of chunk indices so idle
// goroutines keep pulling the next unclaimed chunk instead of owning a
// fixed range up front.
package encoder

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jeffwigger/eliaspack/bitstream"
	"github.com/jeffwigger/eliaspack/codec"
	"github.com/jeffwigger/eliaspack/planner"
)

// Encode writes every element of arr using c, following the chunk
// boundaries and bit offsets p describes, and returns the packed
// bytes. arr must be the exact array the plan was built from: the
// plan's chunk ranges index directly into it.
func Encode[T codec.Integer](arr []T, c codec.Coder[T], p *planner.Plan) ([]byte, error) {
	totalBits := p.TotalBits()
	cells := bitstream.NewCells(int((totalBits + 7) / 8))

	if p.TotalChunks == 0 {
		return cells.Bytes(), nil
	}

	work := make(chan int, p.TotalChunks)
	for i := 0; i < p.TotalChunks; i++ {
		work <- i
	}
	close(work)

	var failed atomic.Bool
	var wg sync.WaitGroup

	workers := p.ThreadCount
	if workers > p.TotalChunks {
		workers = p.TotalChunks
	}

	for g := 0; g < workers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failed.Store(true)
				}
			}()

			for i := range work {
				start, end := p.ChunkRange(i, len(arr))
				w := bitstream.NewWriter(cells, p.BitPrefix[i], p.BitPrefix[i+1])
				for _, x := range arr[start:end] {
					c.Encode(w, x)
				}
				w.Flush()
			}
		}()
	}
	wg.Wait()

	if failed.Load() {
		return nil, fmt.Errorf("encoder: failed to encode one or more chunks (non-positive element?)")
	}

	return cells.Bytes(), nil
}
