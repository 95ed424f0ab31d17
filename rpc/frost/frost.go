// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frost

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/ratelimit"
)

const (
	rateLimitFrost = 200
	rateBurstFrost = 100
)

// Frost - type for the RPC
type Frost struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create a whole chain RPC handler
func New(log *logger.L, l ledger.Ledger) *Frost {
	return &Frost{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFrost, rateBurstFrost),
		Ledger:  l,
	}
}

// AllArguments - empty arguments for a full scan
type AllArguments struct{}

// AllReply - every id of one chain in append order
type AllReply struct {
	Ids []uint64 `json:"ids"`
}

// AllTemperatures - every temperature checkpoint id
//
// a full scan, intended for audit tooling not polling clients
func (frost *Frost) AllTemperatures(_ *AllArguments, reply *AllReply) error {
	if err := ratelimit.Limit(frost.Limiter); nil != err {
		return err
	}

	ids, err := frost.Ledger.AllTemperatureIds()
	if nil != err {
		return err
	}

	reply.Ids = ids
	return nil
}

// AllKeys - every key entry id
//
// a full scan, intended for audit tooling not polling clients
func (frost *Frost) AllKeys(_ *AllArguments, reply *AllReply) error {
	if err := ratelimit.Limit(frost.Limiter); nil != err {
		return err
	}

	ids, err := frost.Ledger.AllKeyIds()
	if nil != err {
		return err
	}

	reply.Ids = ids
	return nil
}
