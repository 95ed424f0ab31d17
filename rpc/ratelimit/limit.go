// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/fault"
)

// reserve some tokens and wait out the imposed delay
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - charge one request against the limiter
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - charge a batch of count items against the limiter
//
// an out of range count is still charged as a single request so a
// client sending junk cannot bypass the limit, but gets an error
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return reserve(limiter, count)
}
