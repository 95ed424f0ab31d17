// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/temperature"
)

// CheckpointData - select one temperature checkpoint
type CheckpointData struct {
	Id      uint64
	Payload bool
}

// CheckpointReply - metadata and optional ciphertext reference
type CheckpointReply struct {
	Metadata *ledger.TemperatureRecord `json:"metadata"`
	Payload  *ledger.Payload           `json:"payload,omitempty"`
}

// GetCheckpoint - fetch one temperature checkpoint
func (client *Client) GetCheckpoint(checkpointConfig *CheckpointData) (*CheckpointReply, error) {

	metadataArgs := temperature.MetadataArguments{
		Id: checkpointConfig.Id,
	}

	client.printJson("Checkpoint Request", metadataArgs)

	metadata := &ledger.TemperatureRecord{}
	err := client.client.Call("Temperature.Metadata", metadataArgs, metadata)
	if nil != err {
		return nil, err
	}

	response := CheckpointReply{
		Metadata: metadata,
	}

	if checkpointConfig.Payload {
		payloadArgs := temperature.PayloadArguments{
			Id: checkpointConfig.Id,
		}
		payload := &ledger.Payload{}
		err = client.client.Call("Temperature.Payload", payloadArgs, payload)
		if nil != err {
			return nil, err
		}
		response.Payload = payload
	}

	client.printJson("Checkpoint Reply", response)

	return &response, nil
}
