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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIlog2FloorValues(t *testing.T) {
	assert.Equal(t, uint(0), Ilog2(1))
	assert.Equal(t, uint(1), Ilog2(2))
	assert.Equal(t, uint(3), Ilog2(8))
	assert.Equal(t, uint(4), Ilog2(17))
	assert.Equal(t, uint(63), Ilog2(1<<63))
}

func TestIlog2PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() {
		Ilog2(0)
	})
}

func TestComputeJobsPerTaskDistributesRemainder(t *testing.T) {
	jobs, err := ComputeJobsPerTask(make([]uint, 3), 10, 3)
	require.NoError(t, err)

	var sum uint
	for _, j := range jobs {
		sum += j
	}
	assert.Equal(t, uint(10), sum)
	assert.Equal(t, []uint{4, 3, 3}, jobs)
}

func TestComputeJobsPerTaskMoreTasksThanJobs(t *testing.T) {
	jobs, err := ComputeJobsPerTask(make([]uint, 5), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 1, 1, 1, 1}, jobs)
}

func TestComputeJobsPerTaskRejectsZeroTasks(t *testing.T) {
	_, err := ComputeJobsPerTask(make([]uint, 0), 10, 0)
	assert.Error(t, err)
}

func TestComputeJobsPerTaskRejectsZeroJobs(t *testing.T) {
	_, err := ComputeJobsPerTask(make([]uint, 3), 0, 3)
	assert.Error(t, err)
}
