// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/keypair"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/rpc/keychain"
	"github.com/water4699/frost-key-chain/vault"
)

var (
	ErrMakeStoreFail = fault.ProcessError("make store failed")
)

// StoreData - data for a key entry request
type StoreData struct {
	Name    string
	Payload vault.ExternalHandle
	Proof   vault.Proof
	Owner   *keypair.KeyPair
}

// Store - append one signed named sealed key
func (client *Client) Store(storeConfig *StoreData) (*keychain.StoreReply, error) {

	r, err := makeKeyEntry(storeConfig)
	if nil != err {
		return nil, err
	}
	if nil == r {
		return nil, ErrMakeStoreFail
	}

	storeArgs := keychain.StoreArguments{
		Name:      r.Name,
		Payload:   storeConfig.Payload,
		Proof:     storeConfig.Proof,
		Recorder:  r.Recorder,
		Signature: r.Signature,
	}

	client.printJson("Store Request", storeArgs)

	reply := &keychain.StoreReply{}
	err = client.client.Call("KeyChain.Store", storeArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Store Reply", reply)

	return reply, nil
}

func makeKeyEntry(storeConfig *StoreData) (*ledgerrecord.KeyEntry, error) {

	r := ledgerrecord.KeyEntry{
		Name:      storeConfig.Name,
		Recorder:  storeConfig.Owner.Account,
		Signature: nil,
	}

	// pack without signature, the digest comes back
	digest, err := r.Pack(storeConfig.Owner.Account)
	if nil == err {
		return nil, ErrMakeStoreFail
	} else if fault.InvalidSignatureLength != err {
		return nil, err
	}

	// attach signature
	signature, err := storeConfig.Owner.Sign(digest)
	if nil != err {
		return nil, err
	}
	r.Signature = signature

	// check that signature is correct by packing again
	_, err = r.Pack(storeConfig.Owner.Account)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
