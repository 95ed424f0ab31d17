// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
)

// to print a keypair for future tests
func TestGenerateKeypair(t *testing.T) {
	generate := false

	// generate = true // (uncomment to get a new key pair)

	if generate {
		// display key pair and fail the test
		// use the displayed values to modify data below
		privateKey, err := crypto.GenerateKey()
		if nil != err {
			t.Errorf("key pair generation error: %v", err)
			return
		}
		t.Errorf("*** GENERATED private key: %x", crypto.FromECDSA(privateKey))
		t.Errorf("*** GENERATED address: %s", crypto.PubkeyToAddress(privateKey.PublicKey).Hex())
		return
	}
}

// deterministic signing keys for the tests
const (
	recorderOneKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	recorderTwoKeyHex = "8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a"
)

// derive the account of a signing key
func makeAccount(t *testing.T, keyHex string) *account.Account {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("create private key error: %s", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	acc, err := account.AccountFromBytes(address.Bytes())
	if nil != err {
		t.Fatalf("account from bytes error: %s", err)
	}
	return acc
}

// sign a digest the way a wallet does, prefix then sign the prefixed hash
func signDigest(t *testing.T, keyHex string, digest []byte) account.Signature {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("create private key error: %s", err)
	}
	prefixed := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), digest)
	signature, err := crypto.Sign(prefixed, privateKey)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return signature
}
