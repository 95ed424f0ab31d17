// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/command/frost-cli/configuration"
)

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	infoConfig, err := configuration.GetInfoConfiguration(m.file)
	if nil != err {
		return err
	}

	printJson(m.w, infoConfig)

	return nil
}
