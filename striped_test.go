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
	"fmt"
	"sync"
	"testing"

	"github.com/dolthub/swiss"
	"github.com/stretchr/testify/require"
)

func TestStriped_New(t *testing.T) {
	t.Parallel()

	s := NewStriped[string](100)
	require.Equal(t, 128, s.Len(), "the stripe count should be rounded up to a power of two")

	s = NewStriped[string](0)
	require.Positive(t, s.Len())
}

func TestStriped_SameKeyExcludes(t *testing.T) {
	t.Parallel()

	s := NewStriped[string](64)

	require.True(t, s.TryLock("a"))
	require.False(t, s.TryLock("a"), "the stripe of a held key should refuse a second acquisition")
	s.Unlock("a")
	require.True(t, s.TryLock("a"))
	s.Unlock("a")
}

func TestStriped_UnlockOfUnlocked(t *testing.T) {
	t.Parallel()

	s := NewStriped[int](16)

	require.PanicsWithValue(t, "spin: unlock of unlocked Mutex", func() {
		s.Unlock(1)
	})
}

// Per-key guarded updates: each slot is touched only under its key's stripe,
// so the final count per key must be exact, whatever the stripe assignment.
func TestStriped_GuardedCounters(t *testing.T) {
	t.Parallel()

	goroutines := 8
	keys := 32
	increments := 1_000

	s := NewStriped[int](64)
	counts := make([]int, keys)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				key := j % keys
				s.With(key, func() {
					counts[key]++
				})
			}
		}()
	}
	wg.Wait()

	for i := 0; i < keys; i++ {
		require.Equal(t, goroutines*increments/keys, counts[i])
	}
}

// A shard map guarded by one lock per shard: reads and writes of a shard
// go through its stripe, mixing Striped with a realistic payload.
func TestStriped_ShardedMap(t *testing.T) {
	t.Parallel()

	goroutines := 8
	shards := 4
	increments := 1_000

	s := NewStriped[int](shards)
	maps := make([]*swiss.Map[string, int], s.Len())
	for i := range maps {
		maps[i] = swiss.NewMap[string, int](64)
	}
	shard := func(key int) int {
		return key % len(maps)
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				// Every access to maps[k] happens under the stripe of k.
				k := shard(j)
				name := fmt.Sprintf("key-%d", j)
				s.Lock(k)
				v, _ := maps[k].Get(name)
				maps[k].Put(name, v+1)
				s.Unlock(k)
			}
		}()
	}
	wg.Wait()

	total := 0
	for k, m := range maps {
		s.Lock(k)
		m.Iter(func(name string, v int) bool {
			total += v
			return false
		})
		s.Unlock(k)
	}
	require.Equal(t, goroutines*increments, total)
}

func TestStriped_WithReleasesOnPanic(t *testing.T) {
	t.Parallel()

	s := NewStriped[int](16)

	require.Panics(t, func() {
		s.With(1, func() {
			panic("failure under the stripe")
		})
	})
	require.True(t, s.TryLock(1), "the stripe should have been released on the panic path")
	s.Unlock(1)
}
