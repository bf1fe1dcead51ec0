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

package xsync

import (
	"sync/atomic"
	"testing"
)

// The recorder workload: every goroutine counts its own grants, a snapshot
// is taken once in a while.
func benchmarkRecords(b *testing.B, record func(), snapshot func() uint64) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ops := 0
		for pb.Next() {
			ops++
			if ops%10_000 == 0 {
				snapshot()
			} else {
				record()
			}
		}
	})
}

func BenchmarkAdder_Records(b *testing.B) {
	a := NewAdder()
	benchmarkRecords(b, func() {
		a.Add(1)
	}, func() uint64 {
		return a.Value()
	})
}

// Baseline: the single shared word the striping exists to beat.
func BenchmarkAtomicUint64_Records(b *testing.B) {
	var c atomic.Uint64
	benchmarkRecords(b, func() {
		c.Add(1)
	}, func() uint64 {
		return c.Load()
	})
}
