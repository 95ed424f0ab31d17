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

func runRecord(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	location, err := checkLocation(c.String("location"))
	if nil != err {
		return err
	}

	cargo, err := checkCargo(c.String("cargo"))
	if nil != err {
		return err
	}

	flagged := c.Bool("flagged")

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
		fmt.Fprintf(m.e, "location: %s\n", location)
		fmt.Fprintf(m.e, "cargo: %s\n", cargo)
		fmt.Fprintf(m.e, "flagged: %t\n", flagged)
		fmt.Fprintf(m.e, "payload: %s\n", payload)
		fmt.Fprintf(m.e, "proof: %s\n", proof)
		fmt.Fprintf(m.e, "recorder: %s\n", name)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	recordConfig := &rpccalls.RecordData{
		Location: location,
		Cargo:    cargo,
		Flagged:  flagged,
		Payload:  payload,
		Proof:    proof,
		Owner:    owner.KeyPair,
	}

	response, err := client.Record(recordConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
