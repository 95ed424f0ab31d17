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
	ErrMakeUpdateFail = fault.ProcessError("make update failed")
)

// UpdateData - data for a key replacement request
type UpdateData struct {
	EntryId uint64
	Payload vault.ExternalHandle
	Proof   vault.Proof
	Owner   *keypair.KeyPair
}

// Update - replace the sealed material of an existing entry
func (client *Client) Update(updateConfig *UpdateData) (*keychain.UpdateReply, error) {

	r, err := makeKeyUpdate(updateConfig)
	if nil != err {
		return nil, err
	}
	if nil == r {
		return nil, ErrMakeUpdateFail
	}

	updateArgs := keychain.UpdateArguments{
		EntryId:   r.EntryId,
		Payload:   updateConfig.Payload,
		Proof:     updateConfig.Proof,
		Recorder:  r.Recorder,
		Signature: r.Signature,
	}

	client.printJson("Update Request", updateArgs)

	reply := &keychain.UpdateReply{}
	err = client.client.Call("KeyChain.Update", updateArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Update Reply", reply)

	return reply, nil
}

func makeKeyUpdate(updateConfig *UpdateData) (*ledgerrecord.KeyUpdate, error) {

	r := ledgerrecord.KeyUpdate{
		EntryId:   updateConfig.EntryId,
		Recorder:  updateConfig.Owner.Account,
		Signature: nil,
	}

	// pack without signature, the digest comes back
	digest, err := r.Pack(updateConfig.Owner.Account)
	if nil == err {
		return nil, ErrMakeUpdateFail
	} else if fault.InvalidSignatureLength != err {
		return nil, err
	}

	// attach signature
	signature, err := updateConfig.Owner.Sign(digest)
	if nil != err {
		return nil, err
	}
	r.Signature = signature

	// check that signature is correct by packing again
	_, err = r.Pack(updateConfig.Owner.Account)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
