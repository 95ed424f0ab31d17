// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recorder

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/ratelimit"
)

const (
	MaximumListCount  = 100
	rateLimitRecorder = 200
	rateBurstRecorder = 100
)

// Recorder - type for the RPC
type Recorder struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create a recorder RPC handler
func New(log *logger.L, l ledger.Ledger) *Recorder {
	return &Recorder{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRecorder, rateBurstRecorder),
		Ledger:  l,
	}
}

// ListArguments - select a page of one recorder's records
type ListArguments struct {
	Recorder *account.Account `json:"recorder"`
	Start    uint64           `json:"start,string"` // first list position
	Count    int              `json:"count"`        // number of records
}

// ListReply - one page of list entries
type ListReply struct {
	Next uint64             `json:"next,string"` // start value for the next call
	Data []ledger.ListEntry `json:"data"`
}

// Temperatures - list temperature checkpoints belonging to an account
func (recorder *Recorder) Temperatures(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(recorder.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	recorder.Log.Infof("Recorder.Temperatures: %+v", arguments)

	data, err := recorder.Ledger.ListTemperaturesFor(arguments.Recorder, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	fillPage(reply, data)
	return nil
}

// Keys - list key entries belonging to an account
func (recorder *Recorder) Keys(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(recorder.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	recorder.Log.Infof("Recorder.Keys: %+v", arguments)

	data, err := recorder.Ledger.ListKeysFor(arguments.Recorder, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	fillPage(reply, data)
	return nil
}

// if no record was found then just return Next as zero
// otherwise the next possible list position
func fillPage(reply *ListReply, data []ledger.ListEntry) {
	reply.Data = data
	if 0 == len(data) {
		reply.Next = 0
	} else {
		reply.Next = data[len(data)-1].N + 1
	}
}

// CountArguments - select one recorder
type CountArguments struct {
	Recorder *account.Account `json:"recorder"`
}

// CountReply - per recorder record totals
type CountReply struct {
	Temperatures uint64 `json:"temperatures,string"`
	Keys         uint64 `json:"keys,string"`
}

// Count - totals of both chains for one account
func (recorder *Recorder) Count(arguments *CountArguments, reply *CountReply) error {
	if err := ratelimit.Limit(recorder.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Recorder {
		return fault.MissingParameters
	}

	reply.Temperatures = recorder.Ledger.CountTemperaturesFor(arguments.Recorder)
	reply.Keys = recorder.Ledger.CountKeysFor(arguments.Recorder)
	return nil
}
