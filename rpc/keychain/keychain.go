// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keychain

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
	rateLimitKeyChain = 200
	rateBurstKeyChain = 100
)

// KeyChain - type for the RPC
type KeyChain struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Ledger       ledger.Ledger
}

// New - create a key chain RPC handler
func New(log *logger.L, isNormalMode func(mode.Mode) bool, l ledger.Ledger) *KeyChain {
	return &KeyChain{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitKeyChain, rateBurstKeyChain),
		IsNormalMode: isNormalMode,
		Ledger:       l,
	}
}

// StoreArguments - arguments for a signed key entry
type StoreArguments struct {
	Name      string               `json:"name"`
	Payload   vault.ExternalHandle `json:"payload"`
	Proof     vault.Proof          `json:"proof"`
	Recorder  *account.Account     `json:"recorder"`
	Signature account.Signature    `json:"signature"`
}

// StoreReply - result from the append
type StoreReply struct {
	Id uint64 `json:"id,string"`
}

// Store - append one named sealed key
func (keychain *KeyChain) Store(arguments *StoreArguments, reply *StoreReply) error {
	if err := ratelimit.Limit(keychain.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Recorder {
		return fault.MissingParameters
	}

	keychain.Log.Infof("KeyChain.Store: %q for: %s", arguments.Name, arguments.Recorder)

	if !keychain.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	r := &ledgerrecord.KeyEntry{
		Name:      arguments.Name,
		Recorder:  arguments.Recorder,
		Signature: arguments.Signature,
	}

	id, err := keychain.Ledger.StoreKey(r, arguments.Payload, arguments.Proof)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// UpdateArguments - arguments for a signed key replacement
type UpdateArguments struct {
	EntryId   uint64               `json:"entryId,string"`
	Payload   vault.ExternalHandle `json:"payload"`
	Proof     vault.Proof          `json:"proof"`
	Recorder  *account.Account     `json:"recorder"`
	Signature account.Signature    `json:"signature"`
}

// UpdateReply - result from the in-place replacement
type UpdateReply struct {
	UpdatedAt uint64 `json:"updatedAt,string"`
}

// Update - replace the sealed material of an existing entry
func (keychain *KeyChain) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(keychain.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Recorder {
		return fault.MissingParameters
	}

	keychain.Log.Infof("KeyChain.Update: %d for: %s", arguments.EntryId, arguments.Recorder)

	if !keychain.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	r := &ledgerrecord.KeyUpdate{
		EntryId:   arguments.EntryId,
		Recorder:  arguments.Recorder,
		Signature: arguments.Signature,
	}

	updatedAt, err := keychain.Ledger.UpdateKey(r, arguments.Payload, arguments.Proof)
	if nil != err {
		return err
	}

	reply.UpdatedAt = updatedAt
	return nil
}

// EntryArguments - select one entry by id
type EntryArguments struct {
	Id uint64 `json:"id,string"`
}

// Entry - fetch the metadata of one key entry
func (keychain *KeyChain) Entry(arguments *EntryArguments, reply *ledger.KeyRecord) error {
	if err := ratelimit.Limit(keychain.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := keychain.Ledger.KeyEntry(arguments.Id)
	if nil != err {
		return err
	}

	*reply = *record
	return nil
}

// PayloadArguments - select one entry by id
type PayloadArguments struct {
	Id uint64 `json:"id,string"`
}

// Payload - fetch the current ciphertext handle of one key entry
func (keychain *KeyChain) Payload(arguments *PayloadArguments, reply *ledger.Payload) error {
	if err := ratelimit.Limit(keychain.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	payload, err := keychain.Ledger.KeyPayload(arguments.Id)
	if nil != err {
		return err
	}

	*reply = *payload
	return nil
}
