// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	err := ratelimit.Limit(limiter)
	assert.Nil(t, err, "wrong Limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	err := ratelimit.LimitN(limiter, 10, 100)
	assert.Nil(t, err, "wrong LimitN")
}

func TestLimitNWhenZeroCount(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	err := ratelimit.LimitN(limiter, 0, 100)
	assert.Equal(t, fault.InvalidCount, err, "wrong zero count error")
}

func TestLimitNWhenCountTooLarge(t *testing.T) {
	limiter := rate.NewLimiter(200, 100)

	err := ratelimit.LimitN(limiter, 101, 100)
	assert.Equal(t, fault.InvalidCount, err, "wrong too large error")
}
