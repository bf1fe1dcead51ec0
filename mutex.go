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
	"runtime"
	"sync/atomic"
)

const maxSpins = 16

// Mutex is a raw, payload-less spin lock. It is the building block behind
// Striped and is useful when the protected state cannot live inside a single
// cell.
//
// TryLock is the primitive: one attempt, no spinning. Lock packages the usual
// caller-side retry policy (bounded spinning, then yielding the processor)
// for convenience.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	state atomic.Uint32
}

// TryLock makes a single attempt to acquire m and reports whether it succeeded.
// A successful acquisition synchronizes with the previous holder's Unlock.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(unlocked, locked)
}

// Lock acquires m. If the lock is already in use, the calling goroutine spins
// until the mutex is available, yielding the processor between bounded bursts
// of spinning.
func (m *Mutex) Lock() {
	spins := 0
	for {
		for m.state.Load() == locked {
			spins++
			if spins > maxSpins {
				spins = 0
				runtime.Gosched()
			}
		}

		if m.TryLock() {
			return
		}

		spins = 0
	}
}

// Unlock releases m, publishing the critical section to the next acquirer.
// A locked Mutex is not associated with a particular goroutine; it is allowed
// for one goroutine to lock a Mutex and then arrange for another goroutine to
// unlock it. Unlocking an unlocked Mutex is a fatal usage violation.
func (m *Mutex) Unlock() {
	if !m.state.CompareAndSwap(locked, unlocked) {
		panic("spin: unlock of unlocked Mutex")
	}
}
