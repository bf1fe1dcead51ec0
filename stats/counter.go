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

package stats

import (
	"github.com/maypok86/spin/internal/xsync"
)

// Counter is a goroutine-safe Recorder implementation for use by the locks in spin.
type Counter struct {
	acquisitions *xsync.Adder
	failures     *xsync.Adder
	releases     *xsync.Adder
}

var _ Recorder = (*Counter)(nil)

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{
		acquisitions: xsync.NewAdder(),
		failures:     xsync.NewAdder(),
		releases:     xsync.NewAdder(),
	}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		acquisitions: c.acquisitions.Value(),
		failures:     c.failures.Value(),
		releases:     c.releases.Value(),
	}
}

// RecordAcquisitions records the handing out of guards.
func (c *Counter) RecordAcquisitions(count int) {
	//nolint:gosec // there is no overflow
	c.acquisitions.Add(uint64(count))
}

// RecordFailures records acquisition attempts refused due to contention.
func (c *Counter) RecordFailures(count int) {
	//nolint:gosec // there is no overflow
	c.failures.Add(uint64(count))
}

// RecordReleases records the releases of previously handed out guards.
func (c *Counter) RecordReleases(count int) {
	//nolint:gosec // there is no overflow
	c.releases.Add(uint64(count))
}
