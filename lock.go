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

const (
	unlocked uint32 = 0
	locked   uint32 = 1
)

// Lock is an exclusive spin lock protecting a single payload of type T.
//
// A Lock never blocks: TryLock makes exactly one attempt and reports whether
// it was granted. Retrying, and any backoff between retries, is the caller's
// policy. The payload is reachable only through the Guard returned by a
// successful TryLock, and releasing that Guard is the only way to unlock.
//
// A Lock must not be copied after first use.
type Lock[T any] struct {
	state    atomic.Uint32
	recorder stats.Recorder
	logger   Logger
	cell     cell.Cell[T]
}

// New wraps the payload in an unlocked Lock.
func New[T any](payload T) *Lock[T] {
	return NewWithOptions(payload, nil)
}

// NewWithOptions wraps the payload in an unlocked Lock configured by o.
func NewWithOptions[T any](payload T, o *Options) *Lock[T] {
	return &Lock[T]{
		recorder: o.getStatsRecorder(),
		logger:   o.getLogger(),
		cell:     cell.New(payload),
	}
}

// TryLock makes a single attempt to acquire the lock and returns a Guard
// granting exclusive access to the payload if the lock was free. It returns
// (nil, false) if the lock was already held; it never retries or spins.
//
// The successful transition synchronizes with the previous holder's release,
// so every write the previous holder made to the payload is visible through
// the returned Guard.
func (l *Lock[T]) TryLock() (*Guard[T], bool) {
	if !l.state.CompareAndSwap(unlocked, locked) {
		l.recorder.RecordFailures(1)
		return nil, false
	}
	l.recorder.RecordAcquisitions(1)
	return &Guard[T]{lock: l}, true
}

// With runs fn with exclusive access to the payload, if the lock can be
// acquired, and reports whether fn ran. The guard is released on every exit
// path, including a panic propagating out of fn.
func (l *Lock[T]) With(fn func(payload *T)) bool {
	g, ok := l.TryLock()
	if !ok {
		return false
	}
	defer g.Release()
	fn(g.Pointer())
	return true
}

// Guard is the token of one exclusive acquisition of a Lock. At most one
// Guard of a given Lock is live at any instant. The payload may be used only
// through a live Guard; Release invalidates it.
//
// A Guard must not be copied.
type Guard[T any] struct {
	noCopy noCopy
	lock   *Lock[T]
}

// Pointer returns the payload. It panics if the guard has been released.
//
// The returned pointer must not be retained past Release.
func (g *Guard[T]) Pointer() *T {
	if g.lock == nil {
		panic("spin: use of released guard")
	}
	return g.lock.cell.Pointer()
}

// Load returns a copy of the payload. It panics if the guard has been released.
func (g *Guard[T]) Load() T {
	if g.lock == nil {
		panic("spin: use of released guard")
	}
	return g.lock.cell.Load()
}

// Release unlocks the lock and invalidates the guard. Typically deferred
// right after a successful TryLock so that it runs on every exit path.
//
// The transition publishes all writes made while the guard was live to the
// next goroutine that acquires the lock. Releasing twice, or releasing a
// guard of a lock whose state no longer shows it held, is a fatal usage
// violation: both indicate a corrupted critical section, so Release panics
// instead of continuing.
func (g *Guard[T]) Release() {
	l := g.lock
	if l == nil {
		panic("spin: guard released twice")
	}
	g.lock = nil
	if !l.state.CompareAndSwap(locked, unlocked) {
		fatal(l.logger, "spin: lock released while not held")
	}
	l.recorder.RecordReleases(1)
}
