// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/temperature"
)

// GetStats - request temperature chain totals
func (client *Client) GetStats() (*ledger.Stats, error) {

	statsArgs := temperature.StatsArguments{}

	client.printJson("Stats Request", statsArgs)

	reply := &ledger.Stats{}
	err := client.client.Call("Temperature.Stats", statsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Stats Reply", reply)

	return reply, nil
}
