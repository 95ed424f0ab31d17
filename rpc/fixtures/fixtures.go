// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"path"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic signing keys for handler tests, the stranger key
// never owns any record
const (
	RecorderKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	StrangerKeyHex = "6cbed15c793ce57650b9877cf6fa156fbef513c4e6134f022a85b1ffdd59b2a1"
)

// SetupTestLogger - start logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0o700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Certificate - the test TLS certificate in PEM form
func Certificate(fixturePath string) string {
	return readFixture(fixturePath, "test.crt")
}

// Key - the test TLS private key in PEM form
func Key(fixturePath string) string {
	return readFixture(fixturePath, "test.key")
}

func readFixture(fixturePath string, name string) string {
	data, err := os.ReadFile(path.Join(fixturePath, name))
	if nil != err {
		panic(fmt.Sprintf("missing fixture: %s: %s", name, err))
	}
	return string(data)
}

// Account - derive the account of a signing key
func Account(keyHex string) *account.Account {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		panic(fmt.Sprintf("invalid fixture key: %s", err))
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	acc, err := account.AccountFromBytes(address.Bytes())
	if nil != err {
		panic(fmt.Sprintf("invalid fixture address: %s", err))
	}
	return acc
}

// SignDigest - sign a digest the way a wallet does, prefix then sign
// the prefixed hash
func SignDigest(keyHex string, digest []byte) account.Signature {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		panic(fmt.Sprintf("invalid fixture key: %s", err))
	}
	prefixed := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), digest)
	signature, err := crypto.Sign(prefixed, privateKey)
	if nil != err {
		panic(fmt.Sprintf("fixture sign error: %s", err))
	}
	return signature
}
