// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/command/frost-cli/rpccalls"
)

func runCheckpoint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	payload := c.Bool("payload")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "payload: %t\n", payload)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	checkpointConfig := &rpccalls.CheckpointData{
		Id:      id,
		Payload: payload,
	}

	response, err := client.GetCheckpoint(checkpointConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
