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
	"unsafe"

	"github.com/dolthub/maphash"

	"github.com/maypok86/spin/internal/xmath"
	"github.com/maypok86/spin/internal/xruntime"
)

// Striped maps keys to a fixed set of Mutexes, so that operations on the same
// key exclude each other while operations on different keys usually proceed in
// parallel. Two keys may share a stripe; the stripe count only bounds the
// possible parallelism, it does not promise independence per key.
//
// The stripes are cache-line padded to keep contention on one key from
// slowing down its neighbours.
type Striped[K comparable] struct {
	hasher  maphash.Hasher[K]
	mask    uint64
	stripes []paddedMutex
}

type paddedMutex struct {
	m       Mutex
	padding [xruntime.CacheLineSize - unsafe.Sizeof(Mutex{})]byte
}

// NewStriped creates a Striped with at least the given number of stripes,
// rounded up to a power of two. If stripes is not positive, the count is
// derived from the available parallelism.
func NewStriped[K comparable](stripes int) *Striped[K] {
	if stripes <= 0 {
		stripes = int(4 * xruntime.Parallelism())
	}
	//nolint:gosec // stripes is positive
	n := xmath.RoundUpPowerOf2(uint32(stripes))
	return &Striped[K]{
		hasher:  maphash.NewHasher[K](),
		mask:    uint64(n - 1),
		stripes: make([]paddedMutex, n),
	}
}

func (s *Striped[K]) stripe(key K) *Mutex {
	return &s.stripes[s.hasher.Hash(key)&s.mask].m
}

// TryLock makes a single attempt to acquire the stripe of key and reports
// whether it succeeded.
func (s *Striped[K]) TryLock(key K) bool {
	return s.stripe(key).TryLock()
}

// Lock acquires the stripe of key, spinning until it is available.
func (s *Striped[K]) Lock(key K) {
	s.stripe(key).Lock()
}

// Unlock releases the stripe of key. Unlocking a stripe that is not locked is
// a fatal usage violation.
func (s *Striped[K]) Unlock(key K) {
	s.stripe(key).Unlock()
}

// With runs fn while holding the stripe of key, releasing it on every exit
// path, including a panic propagating out of fn.
func (s *Striped[K]) With(key K, fn func()) {
	m := s.stripe(key)
	m.Lock()
	defer m.Unlock()
	fn()
}

// Len returns the number of stripes.
func (s *Striped[K]) Len() int {
	return len(s.stripes)
}
