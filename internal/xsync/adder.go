// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
// Copyright (c) 2021 Andrey Pechkurov. All rights reserved.
//
// Copyright notice. This code is a fork of xsync.Counter from this file with some changes:
// https://github.com/puzpuzpuz/xsync/blob/main/counter.go
//
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/puzpuzpuz/xsync/blob/main/LICENSE

package xsync

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/maypok86/spin/internal/xmath"
	"github.com/maypok86/spin/internal/xruntime"
)

// pool for P tokens.
var tokenPool sync.Pool

// a P token is used to point at the current OS thread (P)
// on which the goroutine is run; exact identity of the thread,
// as well as P migration tolerance, is not important since
// it's used to as a best effort mechanism for assigning
// concurrent operations (goroutines) to different stripes of
// the adder.
type token struct {
	idx     uint32
	padding [xruntime.CacheLineSize - 4]byte
}

// Adder is a striped uint64 counter.
//
// Should be preferred over a single atomically updated uint64
// counter in high contention scenarios.
//
// An Adder must not be copied after first use.
type Adder struct {
	stripes []astripe
	mask    uint32
}

type astripe struct {
	c       atomic.Uint64
	padding [xruntime.CacheLineSize - 8]byte
}

// NewAdder creates a new Adder instance.
func NewAdder() *Adder {
	nstripes := xmath.RoundUpPowerOf2(xruntime.Parallelism())
	return &Adder{
		stripes: make([]astripe, nstripes),
		mask:    nstripes - 1,
	}
}

// Add adds the delta to the counter.
func (a *Adder) Add(delta uint64) {
	t, ok := tokenPool.Get().(*token)
	if !ok {
		t = &token{}
		t.idx = rand.Uint32()
	}
	for {
		stripe := &a.stripes[t.idx&a.mask]
		cnt := stripe.c.Load()
		if stripe.c.CompareAndSwap(cnt, cnt+delta) {
			break
		}
		// Give a try with another randomly selected stripe.
		t.idx = rand.Uint32()
	}
	tokenPool.Put(t)
}

// Value returns the current counter value.
// The returned value may not include all of the latest operations in
// presence of concurrent modifications of the counter.
func (a *Adder) Value() uint64 {
	var v uint64
	for i := 0; i < len(a.stripes); i++ {
		stripe := &a.stripes[i]
		v += stripe.c.Load()
	}
	return v
}
