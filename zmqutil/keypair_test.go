// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/zmqutil"
)

const (
	publicHex  = "1507e1f3134e1e382f5c21cdeee5d93ad20ca00b51bc1506bc4b3759b9673401"
	privateHex = "fe16bd9d08d4c3263525afe60db4b8cd2fcbcf37d0dead7d4e00ccbc92b15b0c"
)

func TestParseKeyPublic(t *testing.T) {
	key, private, err := zmqutil.ParseKey("PUBLIC:" + publicHex + "\n")
	assert.Nil(t, err, "wrong ParseKey")
	assert.False(t, private, "wrong private flag")
	assert.Equal(t, publicHex, hex.EncodeToString(key), "wrong key bytes")
}

func TestParseKeyPrivate(t *testing.T) {
	key, private, err := zmqutil.ParseKey("PRIVATE:" + privateHex)
	assert.Nil(t, err, "wrong ParseKey")
	assert.True(t, private, "wrong private flag")
	assert.Equal(t, privateHex, hex.EncodeToString(key), "wrong key bytes")
}

func TestParseKeyErrors(t *testing.T) {
	_, _, err := zmqutil.ParseKey("JUNK:" + publicHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong untagged error")

	_, _, err = zmqutil.ParseKey("PUBLIC:" + publicHex[2:])
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong short public error")

	_, _, err = zmqutil.ParseKey("PRIVATE:" + privateHex[2:])
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "wrong short private error")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz" + privateHex[2:])
	assert.NotNil(t, err, "wrong non-hex error")
}

func TestReadKeyTagMismatch(t *testing.T) {
	_, err := zmqutil.ReadPublicKey("PRIVATE:" + privateHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "wrong public mismatch error")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + publicHex)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "wrong private mismatch error")
}

func TestReadKeyFiles(t *testing.T) {
	dir, err := os.MkdirTemp("", "zmqutil-test")
	assert.Nil(t, err, "wrong MkdirTemp")
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "broadcast.public")
	privateFile := filepath.Join(dir, "broadcast.private")

	err = os.WriteFile(publicFile, []byte("PUBLIC:"+publicHex+"\n"), 0o600)
	assert.Nil(t, err, "wrong WriteFile")
	err = os.WriteFile(privateFile, []byte("PRIVATE:"+privateHex+"\n"), 0o600)
	assert.Nil(t, err, "wrong WriteFile")

	public, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "wrong ReadPublicKeyFile")
	assert.Equal(t, publicHex, hex.EncodeToString(public), "wrong public key")

	private, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "wrong ReadPrivateKeyFile")
	assert.Equal(t, privateHex, hex.EncodeToString(private), "wrong private key")

	_, err = zmqutil.ReadPrivateKeyFile(filepath.Join(dir, "no-such-file"))
	assert.NotNil(t, err, "wrong missing file error")
	assert.True(t, strings.Contains(err.Error(), "no such file"), "wrong error text")
}
