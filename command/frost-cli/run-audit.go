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

func runAudit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := c.Bool("keys")

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %t\n", keys)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	auditConfig := &rpccalls.AuditData{
		Keys: keys,
	}

	response, err := client.GetAllIds(auditConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
