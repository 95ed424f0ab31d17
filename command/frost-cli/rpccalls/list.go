// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/rpc/recorder"
)

// ListData - data for a recorder listing request
type ListData struct {
	Owner *account.Account
	Start uint64
	Count int
	Keys  bool // list key entries instead of temperature checkpoints
}

// GetList - obtain one page of a recorder's records
func (client *Client) GetList(listConfig *ListData) (*recorder.ListReply, error) {

	listArgs := recorder.ListArguments{
		Recorder: listConfig.Owner,
		Start:    listConfig.Start,
		Count:    listConfig.Count,
	}

	method := "Recorder.Temperatures"
	if listConfig.Keys {
		method = "Recorder.Keys"
	}

	client.printJson("List Request", listArgs)

	reply := &recorder.ListReply{}
	err := client.client.Call(method, listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}

// CountData - select one recorder
type CountData struct {
	Owner *account.Account
}

// GetCounts - obtain a recorder's record totals
func (client *Client) GetCounts(countConfig *CountData) (*recorder.CountReply, error) {

	countArgs := recorder.CountArguments{
		Recorder: countConfig.Owner,
	}

	client.printJson("Count Request", countArgs)

	reply := &recorder.CountReply{}
	err := client.client.Call("Recorder.Count", countArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Count Reply", reply)

	return reply, nil
}
