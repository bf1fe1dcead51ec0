// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats collects statistics about the usage of locks.
package stats

import "math"

// Recorder accumulates statistics during the operation of a lock.
type Recorder interface {
	// RecordAcquisitions records the handing out of guards. This should be called when an
	// acquisition attempt succeeds in any mode.
	RecordAcquisitions(count int)
	// RecordFailures records acquisition attempts that found the lock held in an incompatible
	// mode. Contention is not an error, it is only counted.
	RecordFailures(count int)
	// RecordReleases records the releases of previously handed out guards.
	RecordReleases(count int)
}

// Stats are statistics about the usage of a lock.
type Stats struct {
	acquisitions uint64
	failures     uint64
	releases     uint64
}

// Acquisitions returns the number of times an acquisition attempt was granted a guard.
func (s Stats) Acquisitions() uint64 {
	return s.acquisitions
}

// Failures returns the number of times an acquisition attempt found the lock held in an
// incompatible mode and reported "no access granted".
func (s Stats) Failures() uint64 {
	return s.failures
}

// Releases returns the number of guards that have been released.
func (s Stats) Releases() uint64 {
	return s.releases
}

// Attempts returns the total number of acquisition attempts.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling, we recommend
// implementing your own Recorder.
func (s Stats) Attempts() uint64 {
	return checkedAdd(s.acquisitions, s.failures)
}

// FailureRatio returns the ratio of acquisition attempts that were refused due to contention.
func (s Stats) FailureRatio() float64 {
	attempts := s.Attempts()
	if attempts == 0 {
		return 0.0
	}
	return float64(s.failures) / float64(attempts)
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
