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

// Package gid exposes the identity of the calling goroutine.
package gid

import "github.com/petermattis/goid"

// Free is never assigned to a live goroutine, so it can be used as the
// "nobody" value in an owner word.
const Free int64 = 0

// Current returns the id of the calling goroutine.
//
// The runtime assigns the id when the goroutine is created and never reuses
// it while the goroutine is alive, which is exactly the stability an owner
// check needs. Ids start at 1, so Free never collides with a real owner.
func Current() int64 {
	return goid.Get()
}
