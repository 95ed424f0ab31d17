// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/rpc/frost"
)

// AuditData - select which chain to scan
type AuditData struct {
	Keys bool // scan key entries instead of temperature checkpoints
}

// GetAllIds - obtain every id of one chain in append order
//
// a full scan, the reply grows with the chain
func (client *Client) GetAllIds(auditConfig *AuditData) (*frost.AllReply, error) {

	allArgs := frost.AllArguments{}

	method := "Frost.AllTemperatures"
	if auditConfig.Keys {
		method = "Frost.AllKeys"
	}

	client.printJson("Audit Request", allArgs)

	reply := &frost.AllReply{}
	err := client.client.Call(method, allArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Audit Reply", reply)

	return reply, nil
}
