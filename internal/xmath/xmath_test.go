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

package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), Abs(0))
	require.Equal(t, int64(42), Abs(42))
	require.Equal(t, int64(42), Abs(-42))
	require.Equal(t, int64(math.MaxInt64), Abs(math.MaxInt64))
}

// Stripe counts are derived from requested sizes: the result must be a power
// of two and never smaller than the request.
func TestRoundUpPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    uint32
		want uint32
	}{
		{v: 0, want: 1},
		{v: 1, want: 1},
		{v: 2, want: 2},
		{v: 3, want: 4},
		{v: 4, want: 4},
		{v: 100, want: 128},
		{v: 1 << 16, want: 1 << 16},
		{v: 1<<16 + 1, want: 1 << 17},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RoundUpPowerOf2(tt.v), "v=%d", tt.v)
	}
}

func TestRoundUpPowerOf264(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    uint64
		want uint64
	}{
		{v: 0, want: 1},
		{v: 1, want: 1},
		{v: 3, want: 4},
		{v: 4, want: 4},
		{v: 1<<32 + 1, want: 1 << 33},
		{v: 1 << 62, want: 1 << 62},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RoundUpPowerOf264(tt.v), "v=%d", tt.v)
	}
}
