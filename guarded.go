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

package spin

import (
	"sync/atomic"

	"github.com/maypok86/spin/internal/cell"
	"github.com/maypok86/spin/stats"
)

// The state word of a GuardedCell: bit 0 is the writer flag, the remaining
// bits count the live readers. The writer flag and a nonzero reader count
// never coexist. The shared word caps the cell at 2^31-1 simultaneous
// readers; past that the count would carry into the writer flag.
const (
	writerBit  uint32 = 1
	readerUnit uint32 = 2
)

// GuardedCell is a spin-based single-writer/multi-reader cell protecting a
// single payload of type T.
//
// Any number of ReadGuards may be live at once, or a single WriteGuard, never
// both. Like the other locks in this package, acquisition is a single attempt
// that never blocks; retrying is the caller's policy.
//
// A GuardedCell must not be copied after first use.
type GuardedCell[T any] struct {
	state    atomic.Uint32
	recorder stats.Recorder
	logger   Logger
	cell     cell.Cell[T]
}

// NewGuardedCell wraps the payload in an idle GuardedCell.
func NewGuardedCell[T any](payload T) *GuardedCell[T] {
	return NewGuardedCellWithOptions(payload, nil)
}

// NewGuardedCellWithOptions wraps the payload in an idle GuardedCell configured by o.
func NewGuardedCellWithOptions[T any](payload T, o *Options) *GuardedCell[T] {
	return &GuardedCell[T]{
		recorder: o.getStatsRecorder(),
		logger:   o.getLogger(),
		cell:     cell.New(payload),
	}
}

// TryRead makes a single attempt to acquire shared access and returns a
// ReadGuard if no writer is active. It returns (nil, false) when a writer
// holds the cell, and also when the one transition attempt loses a race with
// another reader; either way the caller decides whether to try again.
//
// A successful TryRead synchronizes with the previous writer's release:
// mutual exclusion between writers alone would not stop a reader from seeing
// a stale or half-applied payload, so the read transition itself carries the
// happens-before edge from the last completed write section.
func (c *GuardedCell[T]) TryRead() (*ReadGuard[T], bool) {
	s := c.state.Load()
	if s&writerBit != 0 || !c.state.CompareAndSwap(s, s+readerUnit) {
		c.recorder.RecordFailures(1)
		return nil, false
	}
	c.recorder.RecordAcquisitions(1)
	return &ReadGuard[T]{cell: c}, true
}

// TryWrite makes a single attempt to acquire exclusive write access. It
// succeeds only from the fully idle state: no writer and no readers. It never
// retries.
//
// A successful TryWrite synchronizes with the last reader's release, so the
// writer never overlaps a still-running read section.
func (c *GuardedCell[T]) TryWrite() (*WriteGuard[T], bool) {
	if !c.state.CompareAndSwap(0, writerBit) {
		c.recorder.RecordFailures(1)
		return nil, false
	}
	c.recorder.RecordAcquisitions(1)
	return &WriteGuard[T]{cell: c}, true
}

// WithRead runs fn with shared access to the payload, if a read guard can be
// acquired, and reports whether fn ran. fn must not mutate the payload. The
// guard is released on every exit path, including a panic propagating out of fn.
func (c *GuardedCell[T]) WithRead(fn func(payload *T)) bool {
	g, ok := c.TryRead()
	if !ok {
		return false
	}
	defer g.Release()
	fn(g.Pointer())
	return true
}

// WithWrite runs fn with exclusive access to the payload, if the write guard
// can be acquired, and reports whether fn ran. The guard is released on every
// exit path, including a panic propagating out of fn.
func (c *GuardedCell[T]) WithWrite(fn func(payload *T)) bool {
	g, ok := c.TryWrite()
	if !ok {
		return false
	}
	defer g.Release()
	fn(g.Pointer())
	return true
}

// ReadGuard is the token of one shared acquisition of a GuardedCell.
//
// A ReadGuard must not be copied.
type ReadGuard[T any] struct {
	noCopy noCopy
	cell   *GuardedCell[T]
}

// Pointer returns the payload for reading. The caller must not write through
// the returned pointer and must not retain it past Release. It panics if the
// guard has been released.
func (g *ReadGuard[T]) Pointer() *T {
	if g.cell == nil {
		panic("spin: use of released guard")
	}
	return g.cell.cell.Pointer()
}

// Load returns a copy of the payload. It panics if the guard has been released.
func (g *ReadGuard[T]) Load() T {
	if g.cell == nil {
		panic("spin: use of released guard")
	}
	return g.cell.cell.Load()
}

// Release drops the shared access and invalidates the guard. The last
// reader's release publishes to the next writer. Releasing twice, or when
// the state shows no readers, is a fatal usage violation.
func (g *ReadGuard[T]) Release() {
	c := g.cell
	if c == nil {
		panic("spin: guard released twice")
	}
	g.cell = nil
	for {
		s := c.state.Load()
		if s&writerBit != 0 || s < readerUnit {
			fatal(c.logger, "spin: read guard released while no read was held")
		}
		if c.state.CompareAndSwap(s, s-readerUnit) {
			break
		}
	}
	c.recorder.RecordReleases(1)
}

// WriteGuard is the token of the exclusive acquisition of a GuardedCell. At
// most one WriteGuard of a given cell is live at any instant, and none while
// any ReadGuard is live.
//
// A WriteGuard must not be copied.
type WriteGuard[T any] struct {
	noCopy noCopy
	cell   *GuardedCell[T]
}

// Pointer returns the payload for writing. The returned pointer must not be
// retained past Release. It panics if the guard has been released.
func (g *WriteGuard[T]) Pointer() *T {
	if g.cell == nil {
		panic("spin: use of released guard")
	}
	return g.cell.cell.Pointer()
}

// Release ends the write section and invalidates the guard. The transition
// publishes every write made under the guard to all subsequent readers and
// writers. Releasing twice, or when the state does not show exactly one
// active writer, is a fatal usage violation.
func (g *WriteGuard[T]) Release() {
	c := g.cell
	if c == nil {
		panic("spin: guard released twice")
	}
	g.cell = nil
	if !c.state.CompareAndSwap(writerBit, 0) {
		fatal(c.logger, "spin: write guard released while no write was held")
	}
	c.recorder.RecordReleases(1)
}
