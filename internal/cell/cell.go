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

// Package cell hides a lock's payload so that the only path to it runs
// through the lock's guards.
package cell

// Cell exclusively owns a lock's payload and is deliberately exempt from the
// usual "no mutation through a shared handle" discipline: a lock hands out
// mutable access to the payload through a shared *Lock, and the Cell is the
// single place where that carve-out lives.
//
// The permitted accesses are:
//   - Pointer, only between a successful acquisition and the release of the
//     guard returned by it;
//   - Load, under the same window, when only a snapshot of the payload is
//     needed.
//
// Calling either without a live guard, or keeping the returned pointer
// around after the guard is released, breaks the exclusion the lock exists
// to provide. The public guard types enforce this at their boundary; nothing
// else in the module touches a Cell directly.
type Cell[T any] struct {
	value T
}

// New wraps the payload in a Cell.
func New[T any](value T) Cell[T] {
	return Cell[T]{value: value}
}

// Pointer returns the address of the payload.
func (c *Cell[T]) Pointer() *T {
	return &c.value
}

// Load returns a copy of the payload.
func (c *Cell[T]) Load() T {
	return c.value
}
