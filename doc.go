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

// Package spin provides spin-based mutual exclusion primitives that never
// park the calling goroutine.
//
// Every lock in this package follows the same contract:
//
//   - An acquisition attempt is a single atomic transition on a state word.
//     It either succeeds and returns a guard, or reports failure at once.
//     Nothing ever blocks, retries internally, or waits on a scheduler;
//     spinning, if wanted, is a loop the caller writes (Mutex.Lock packages
//     that loop for the raw mutex).
//   - The payload is reachable only through a live guard, and releasing the
//     guard is the only way back to the unlocked state. Releases are meant to
//     be deferred, or driven through the With* closure forms, so they run on
//     every exit path including panics.
//   - Contention is an ordinary result, reported as "no guard". Misuse,
//     such as releasing a guard twice or releasing a lock that is not held,
//     is a fatal violation and panics: continuing would corrupt the very
//     invariant the lock exists to protect.
//
// Lock is the exclusive lock, RecursiveLock the variant the owning goroutine
// may re-enter, GuardedCell the single-writer/multi-reader cell, and
// Mutex/Striped the raw payload-less forms.
package spin
