// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair()
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "raw: %#v\n", rawKeyPair)
	}
	printJson(m.w, rawKeyPair)
	return nil
}
