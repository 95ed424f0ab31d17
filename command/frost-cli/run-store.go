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

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyName, err := checkKeyName(c.String("name"))
	if nil != err {
		return err
	}

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	proof, err := checkProof(c.String("proof"))
	if nil != err {
		return err
	}

	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", keyName)
		fmt.Fprintf(m.e, "payload: %s\n", payload)
		fmt.Fprintf(m.e, "proof: %s\n", proof)
		fmt.Fprintf(m.e, "owner: %s\n", name)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	storeConfig := &rpccalls.StoreData{
		Name:    keyName,
		Payload: payload,
		Proof:   proof,
		Owner:   owner.KeyPair,
	}

	response, err := client.Store(storeConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
