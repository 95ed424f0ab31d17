// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/keypair"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := strings.TrimPrefix(c.String("key"), "0x")
	if "" == key {
		return ErrRequiredKey
	}

	b, err := hex.DecodeString(key)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key bytes: %d\n", len(b))
	}

	switch len(b) {
	case 32: // raw secp256k1 private key
		rawKeyPair, _, err := keypair.MakeRawKeyPairFromHex(key)
		if nil != err {
			return err
		}
		printJson(m.w, rawKeyPair)

	case 65: // uncompressed public key
		acc, err := keypair.AccountFromHexPublicKey(key)
		if nil != err {
			return err
		}
		response := struct {
			Account string `json:"account"`
		}{
			Account: acc.String(),
		}
		printJson(m.w, response)

	default:
		return ErrKeyLength
	}

	return nil
}
