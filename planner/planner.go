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

// Package planner computes, before any byte is written, how the input
// array is split into chunks and where each chunk's bits will land in
// the final buffer. The goroutine-per-task plus sync.WaitGroup combine
// shape mirrors kanzi-go's BWT.inverseBiPSIv2; the cyclic assignment of
// chunks to workers (goroutine g owns chunks g, g+threadCount, ...) and
// the three-tier batch-size policy below follow the reference Elias
// codec's OpenMP prefix-sum pass, which starts each thread at its own
// offset and advances it by threadCount*batchSize per round.
package planner

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jeffwigger/eliaspack/codec"
	"github.com/jeffwigger/eliaspack/internal"
)

// Plan is the immutable result of sizing and costing a batch. The
// parallel encoder walks Plan.BitPrefix to learn exactly where each
// chunk starts writing, with no further coordination required between
// chunks beyond the boundary byte.
type Plan struct {
	// BatchSize is the number of elements assigned to each chunk
	// (the last chunk may hold fewer).
	BatchSize uint32

	// TotalChunks is the number of chunks the array was split into.
	TotalChunks int

	// BitPrefix holds TotalChunks+1 entries: BitPrefix[i] is the bit
	// offset at which chunk i begins, and BitPrefix[TotalChunks] is
	// the total bit length of the encoded array.
	BitPrefix []uint64

	// ThreadCount is the number of goroutines the sizing and costing
	// pass used, and the number the parallel encoder should reuse.
	ThreadCount int
}

// sizeBatch picks the batch size and the actual thread count to cost
// with, given the requested threadCount. It stays on the codec's small
// batch by default; if the array is too small to give every requested
// thread a full small batch, threads are cut back to the number of
// small batches that actually exist (no point spinning up goroutines
// with no chunk to own); if the array is large enough that even every
// thread getting two full large batches wouldn't exhaust it, it
// switches to the coarser large batch to cut scheduling overhead.
func sizeBatch[T codec.Integer](c codec.Coder[T], n, threadCount int) (batchSize uint32, threads int) {
	batchSize = c.SmallBatch()
	threads = threadCount

	if uint64(n) < uint64(batchSize)*uint64(threadCount) {
		threads = (n + int(batchSize) - 1) / int(batchSize)
		if threads < 1 {
			threads = 1
		}
	} else if uint64(n) >= 2*uint64(c.LargeBatch())*uint64(threadCount) {
		batchSize = c.LargeBatch()
	}

	return batchSize, threads
}

// Build sizes arr into chunks and computes the bit-cost prefix sum,
// using threadCount goroutines for the per-chunk costing pass. Element
// costing is cyclically assigned across goroutines: goroutine g costs
// chunks g, g+threadCount, g+2*threadCount, ... so that one straggler
// chunk (e.g. one full of unusually large values) is no more likely to
// land entirely on a single goroutine than any other.
func Build[T codec.Integer](arr []T, c codec.Coder[T], threadCount int) (*Plan, error) {
	n := len(arr)
	if threadCount < 1 {
		threadCount = 1
	}

	if n == 0 {
		return &Plan{BatchSize: c.SmallBatch(), TotalChunks: 0, BitPrefix: []uint64{0}, ThreadCount: threadCount}, nil
	}

	batchSize, threadCount := sizeBatch(c, n, threadCount)
	totalChunks := (n + int(batchSize) - 1) / int(batchSize)

	if threadCount > totalChunks {
		threadCount = totalChunks
	}

	chunkBits := make([]uint64, totalChunks)
	var failed atomic.Bool

	jobsPerTask, err := internal.ComputeJobsPerTask(make([]uint, threadCount), uint(totalChunks), uint(threadCount))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < threadCount; g++ {
		wg.Add(1)
		go func(g int, count uint) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failed.Store(true)
				}
			}()

			for k := uint(0); k < count; k++ {
				chunk := g + int(k)*threadCount
				start := chunk * int(batchSize)
				end := start + int(batchSize)
				if end > n {
					end = n
				}

				var sum uint64
				for _, x := range arr[start:end] {
					if x <= 0 {
						failed.Store(true)
						return
					}
					sum += c.Cost(x)
				}
				chunkBits[chunk] = sum
			}
		}(g, jobsPerTask[g])
	}
	wg.Wait()

	if failed.Load() {
		return nil, fmt.Errorf("planner: failed to cost one or more chunks (non-positive element?)")
	}

	bitPrefix := make([]uint64, totalChunks+1)
	for i := 0; i < totalChunks; i++ {
		bitPrefix[i+1] = bitPrefix[i] + chunkBits[i]
	}

	return &Plan{
		BatchSize:   batchSize,
		TotalChunks: totalChunks,
		BitPrefix:   bitPrefix,
		ThreadCount: threadCount,
	}, nil
}

// TotalBits returns the full encoded bit length, i.e. BitPrefix's last
// entry. Convenience accessor for callers that only need the total.
func (p *Plan) TotalBits() uint64 {
	return p.BitPrefix[p.TotalChunks]
}

// ChunkRange returns the half-open element range [start, end) that
// chunk i owns.
func (p *Plan) ChunkRange(i, n int) (start, end int) {
	start = i * int(p.BatchSize)
	end = start + int(p.BatchSize)
	if end > n {
		end = n
	}
	return start, end
}
