// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/water4699/frost-key-chain/counter"
)

func TestCounter(t *testing.T) {

	var c counter.Counter

	if !c.IsZero() {
		t.Errorf("counter is not zero at start: %d", c.Uint64())
	}

	// the returned value is the post-operation count, as used by
	// the connection limiter
	if 1 != c.Increment() {
		t.Errorf("first increment did not return 1: %d", c.Uint64())
	}
	for i := 2; i <= 5; i += 1 {
		if uint64(i) != c.Increment() {
			t.Errorf("increment did not return %d: %d", i, c.Uint64())
		}
	}

	if 4 != c.Decrement() {
		t.Errorf("decrement did not return 4: %d", c.Uint64())
	}

	for !c.IsZero() {
		c.Decrement()
	}

	// decrement below zero wraps, i.e. twos complement -1
	if ^uint64(0) != c.Decrement() {
		t.Errorf("counter did not underflow: %d", c.Uint64())
	}
}

func TestCounterConcurrent(t *testing.T) {

	const workers = 10
	const each = 1000

	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
			for j := 0; j < each/2; j += 1 {
				c.Decrement()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	expected := uint64(workers * each / 2)
	if expected != c.Uint64() {
		t.Errorf("counter after concurrent updates: %d  expected: %d", c.Uint64(), expected)
	}
}
