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
	"github.com/maypok86/spin/internal/gid"
	"github.com/maypok86/spin/stats"
)

// RecursiveLock is an exclusive spin lock that the owning goroutine may
// acquire again without deadlocking itself.
//
// The state word holds the id of the owning goroutine (gid.Free when the
// lock is free); the re-entrance depth is kept beside it and is only ever
// touched by the owner, so it needs no atomicity of its own.
//
// Re-entering does not mint a second mutable handle to the payload: only the
// outermost guard may call Pointer, nested guards are read-only tokens. Two
// live mutable handles to the same payload would alias it even though both
// belong to one goroutine, so the boundary refuses the second one loudly
// rather than handing it out.
//
// A RecursiveLock must not be copied after first use.
type RecursiveLock[T any] struct {
	owner    atomic.Int64
	depth    int32
	recorder stats.Recorder
	logger   Logger
	cell     cell.Cell[T]
}

// NewRecursive wraps the payload in a free RecursiveLock.
func NewRecursive[T any](payload T) *RecursiveLock[T] {
	return NewRecursiveWithOptions(payload, nil)
}

// NewRecursiveWithOptions wraps the payload in a free RecursiveLock configured by o.
func NewRecursiveWithOptions[T any](payload T, o *Options) *RecursiveLock[T] {
	return &RecursiveLock[T]{
		recorder: o.getStatsRecorder(),
		logger:   o.getLogger(),
		cell:     cell.New(payload),
	}
}

// TryLock makes a single attempt to acquire the lock on behalf of the calling
// goroutine. It succeeds if the lock is free or already owned by the caller,
// and returns (nil, false) if another goroutine owns it. It never retries.
//
// Acquiring a free lock synchronizes with the previous owner's outermost
// release, so the payload is seen as the previous owner left it.
func (l *RecursiveLock[T]) TryLock() (*RecursiveGuard[T], bool) {
	me := gid.Current()
	if l.owner.Load() == me {
		// Re-entrance: the caller is the owner, so depth is ours to touch.
		l.depth++
		l.recorder.RecordAcquisitions(1)
		return &RecursiveGuard[T]{lock: l, depth: l.depth}, true
	}
	if !l.owner.CompareAndSwap(gid.Free, me) {
		l.recorder.RecordFailures(1)
		return nil, false
	}
	l.depth = 1
	l.recorder.RecordAcquisitions(1)
	return &RecursiveGuard[T]{lock: l, depth: 1}, true
}

// With runs fn under one acquisition of the lock, if it can be acquired, and
// reports whether fn ran. fn receives the live guard and should consult
// Outermost before asking for mutable access. The guard is released on every
// exit path, including a panic propagating out of fn.
func (l *RecursiveLock[T]) With(fn func(g *RecursiveGuard[T])) bool {
	g, ok := l.TryLock()
	if !ok {
		return false
	}
	defer g.Release()
	fn(g)
	return true
}

// RecursiveGuard is the token of one acquisition of a RecursiveLock. Guards
// of nested acquisitions must be released in LIFO order, and only by the
// goroutine that owns the lock.
//
// A RecursiveGuard must not be copied.
type RecursiveGuard[T any] struct {
	noCopy noCopy
	lock   *RecursiveLock[T]
	depth  int32
}

// Outermost reports whether this guard is the first, mutable acquisition
// rather than a nested re-entrance.
func (g *RecursiveGuard[T]) Outermost() bool {
	return g.depth == 1
}

// Pointer returns the payload of the outermost guard. Nested guards are
// read-only tokens: calling Pointer on one panics, because a second mutable
// handle would alias the payload of the outermost guard. Use Load instead.
//
// It also panics if the guard has been released.
func (g *RecursiveGuard[T]) Pointer() *T {
	if g.lock == nil {
		panic("spin: use of released guard")
	}
	if g.depth != 1 {
		panic("spin: nested guard grants read-only access")
	}
	return g.lock.cell.Pointer()
}

// Load returns a copy of the payload. Legal at any re-entrance depth; a copy
// aliases nothing. It panics if the guard has been released.
func (g *RecursiveGuard[T]) Load() T {
	if g.lock == nil {
		panic("spin: use of released guard")
	}
	return g.lock.cell.Load()
}

// Release undoes one acquisition. The outermost release frees the lock and
// publishes the whole critical section to the next goroutine that acquires
// it; a nested release only decrements the depth.
//
// Releasing from a goroutine that does not own the lock, releasing guards
// out of LIFO order, or releasing twice are fatal usage violations.
func (g *RecursiveGuard[T]) Release() {
	l := g.lock
	if l == nil {
		panic("spin: guard released twice")
	}
	g.lock = nil
	me := gid.Current()
	if l.owner.Load() != me {
		fatal(l.logger, "spin: recursive lock released by a goroutine that does not own it")
	}
	if l.depth != g.depth {
		fatal(l.logger, "spin: recursive guards released out of order")
	}
	l.depth--
	if l.depth == 0 {
		if !l.owner.CompareAndSwap(me, gid.Free) {
			fatal(l.logger, "spin: recursive lock owner changed during release")
		}
	}
	l.recorder.RecordReleases(1)
}
