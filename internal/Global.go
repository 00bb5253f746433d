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

// Package internal holds the scalar helpers and task-sizing arithmetic
// shared by the planner and parallel encoder. Nothing here is exported
// outside the module.
package internal

import (
	"errors"
	"math/bits"
)

// Ilog2 returns floor(log2(x)) for x >= 1. Panics for x == 0: callers
// must guard, exactly as the codec's precondition requires every
// element to be strictly positive before it reaches this helper.
func Ilog2(x uint64) uint {
	if x == 0 {
		panic(errors.New("ilog2: argument must be >= 1"))
	}

	return uint(bits.Len64(x)) - 1
}

// ComputeJobsPerTask computes the number of jobs associated with each task
// given a number of jobs available and a number of tasks to perform.
// The provided 'jobsPerTask' slice is returned as result.
func ComputeJobsPerTask(jobsPerTask []uint, jobs, tasks uint) ([]uint, error) {
	if tasks == 0 {
		return jobsPerTask, errors.New("invalid number of tasks provided: 0")
	}

	if jobs == 0 {
		return jobsPerTask, errors.New("invalid number of jobs provided: 0")
	}

	var q, r uint

	if jobs <= tasks {
		q = 1
		r = 0
	} else {
		q = jobs / tasks
		r = jobs - q*tasks
	}

	for i := range jobsPerTask {
		jobsPerTask[i] = q
	}

	n := uint(0)

	for r != 0 {
		jobsPerTask[n]++
		r--
		n++

		if n == tasks {
			n = 0
		}
	}

	return jobsPerTask, nil
}
