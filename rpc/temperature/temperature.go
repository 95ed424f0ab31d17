// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package temperature

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/mode"
	"github.com/water4699/frost-key-chain/rpc/ratelimit"
	"github.com/water4699/frost-key-chain/vault"
)

const (
	rateLimitTemperature = 200
	rateBurstTemperature = 100
)

// Temperature - type for the RPC
type Temperature struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       ledger.Ledger
}

// New - create a temperature RPC handler
func New(log *logger.L, isNormalMode func(mode.Mode) bool, l ledger.Ledger) *Temperature {
	return &Temperature{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitTemperature, rateBurstTemperature),
		IsNormalMode: isNormalMode,
		Ledger:       l,
	}
}

// RecordArguments - arguments for a signed temperature checkpoint
type RecordArguments struct {
	Location  string               `json:"location"`
	Cargo     string               `json:"cargo"`
	Flag      bool                 `json:"flag"`
	Payload   vault.ExternalHandle `json:"payload"`
	Proof     vault.Proof          `json:"proof"`
	Recorder  *account.Account     `json:"recorder"`
	Signature account.Signature    `json:"signature"`
}

// RecordReply - result from the append
type RecordReply struct {
	Id uint64 `json:"id,string"`
}

// Record - append one temperature checkpoint
func (temperature *Temperature) Record(arguments *RecordArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(temperature.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Recorder {
		return fault.MissingParameters
	}

	temperature.Log.Infof("Temperature.Record: %q for: %s", arguments.Location, arguments.Recorder)

	if !temperature.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	r := &ledgerrecord.TemperatureLog{
		Location:  arguments.Location,
		Cargo:     arguments.Cargo,
		Flagged:   arguments.Flag,
		Recorder:  arguments.Recorder,
		Signature: arguments.Signature,
	}

	id, err := temperature.Ledger.RecordTemperature(r, arguments.Payload, arguments.Proof)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// MetadataArguments - select one checkpoint by id
type MetadataArguments struct {
	Id uint64 `json:"id,string"`
}

// Metadata - fetch the metadata of one checkpoint
func (temperature *Temperature) Metadata(arguments *MetadataArguments, reply *ledger.TemperatureRecord) error {
	if err := ratelimit.Limit(temperature.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := temperature.Ledger.Temperature(arguments.Id)
	if nil != err {
		return err
	}

	*reply = *record
	return nil
}

// PayloadArguments - select one checkpoint by id
type PayloadArguments struct {
	Id uint64 `json:"id,string"`
}

// Payload - fetch the ciphertext handle of one checkpoint
func (temperature *Temperature) Payload(arguments *PayloadArguments, reply *ledger.Payload) error {
	if err := ratelimit.Limit(temperature.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	payload, err := temperature.Ledger.TemperaturePayload(arguments.Id)
	if nil != err {
		return err
	}

	*reply = *payload
	return nil
}

// StatsArguments - empty arguments for the stats request
type StatsArguments struct{}

// Stats - scan the whole chain for totals
func (temperature *Temperature) Stats(arguments *StatsArguments, reply *ledger.Stats) error {
	if err := ratelimit.Limit(temperature.Limiter); nil != err {
		return err
	}

	stats, err := temperature.Ledger.TemperatureStats()
	if nil != err {
		return err
	}

	*reply = *stats
	return nil
}
