// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/keychain"
)

// EntryData - select one key entry
type EntryData struct {
	Id      uint64
	Payload bool
}

// EntryReply - metadata and optional ciphertext reference
type EntryReply struct {
	Metadata *ledger.KeyRecord `json:"metadata"`
	Payload  *ledger.Payload   `json:"payload,omitempty"`
}

// GetEntry - fetch one key entry
func (client *Client) GetEntry(entryConfig *EntryData) (*EntryReply, error) {

	entryArgs := keychain.EntryArguments{
		Id: entryConfig.Id,
	}

	client.printJson("Entry Request", entryArgs)

	metadata := &ledger.KeyRecord{}
	err := client.client.Call("KeyChain.Entry", entryArgs, metadata)
	if nil != err {
		return nil, err
	}

	response := EntryReply{
		Metadata: metadata,
	}

	if entryConfig.Payload {
		payloadArgs := keychain.PayloadArguments{
			Id: entryConfig.Id,
		}
		payload := &ledger.Payload{}
		err = client.client.Call("KeyChain.Payload", payloadArgs, payload)
		if nil != err {
			return nil, err
		}
		response.Payload = payload
	}

	client.printJson("Entry Reply", response)

	return &response, nil
}
