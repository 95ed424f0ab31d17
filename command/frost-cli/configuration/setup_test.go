// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/keypair"
)

const (
	testKeyHex  = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testPassword = "aStrongEnoughPassword"
)

func makeConfiguration() *Configuration {
	return &Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2230"},
		Identities:      make(map[string]Identity),
	}
}

// test that an added identity decrypts back to the same key
func TestAddIdentity(t *testing.T) {

	config := makeConfiguration()

	err := config.AddIdentity("alice", "cold chain operator", testKeyHex, testPassword)
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	// the stored account must match the account the key derives
	_, pair, err := keypair.MakeRawKeyPairFromHex(testKeyHex)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}

	id, err := config.Identity("alice")
	if nil != err {
		t.Fatalf("identity error: %s", err)
	}
	if pair.Account.String() != id.Account {
		t.Fatalf("account: %s  expected: %s", id.Account, pair.Account)
	}

	// decrypt and compare the private key
	private, err := config.Private(testPassword, "alice")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}
	if testKeyHex != private.KeyPair.PrivateKeyHex() {
		t.Fatalf("private key: %s  expected: %s", private.KeyPair.PrivateKeyHex(), testKeyHex)
	}
	if "cold chain operator" != private.Description {
		t.Fatalf("description: %q", private.Description)
	}

	// second add under the same name must fail
	err = config.AddIdentity("alice", "again", testKeyHex, testPassword)
	if fault.IdentityNameAlreadyExists != err {
		t.Fatalf("duplicate add error: %q  expected: %q", err, fault.IdentityNameAlreadyExists)
	}

	// wrong password must fail
	_, err = config.Private("not the password", "alice")
	if fault.WrongPassword != err {
		t.Fatalf("wrong password error: %q  expected: %q", err, fault.WrongPassword)
	}

	// unknown name must fail
	_, err = config.Private(testPassword, "bob")
	if fault.IdentityNameNotFound != err {
		t.Fatalf("unknown name error: %q  expected: %q", err, fault.IdentityNameNotFound)
	}
}

// a receive-only identity carries no private data
func TestAddReceiveOnlyIdentity(t *testing.T) {

	config := makeConfiguration()

	_, pair, err := keypair.MakeRawKeyPairFromHex(testKeyHex)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}

	err = config.AddReceiveOnlyIdentity("watcher", "audit desk", pair.Account.String())
	if nil != err {
		t.Fatalf("add error: %s", err)
	}

	acc, err := config.Account("watcher")
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	if !acc.IsSame(pair.Account) {
		t.Fatalf("account: %s  expected: %s", acc, pair.Account)
	}

	// no private key can come back
	_, err = config.Private(testPassword, "watcher")
	if fault.NotPrivateKey != err {
		t.Fatalf("private error: %q  expected: %q", err, fault.NotPrivateKey)
	}

	// a broken address must be rejected
	err = config.AddReceiveOnlyIdentity("broken", "bad address", "0x00")
	if nil == err {
		t.Fatalf("add accepted a broken address")
	}
}

// after a password change only the new password unlocks the identity
func TestChangePassword(t *testing.T) {

	config := makeConfiguration()

	err := config.AddIdentity("alice", "cold chain operator", testKeyHex, testPassword)
	if nil != err {
		t.Fatalf("add identity error: %s", err)
	}

	private, err := config.Private(testPassword, "alice")
	if nil != err {
		t.Fatalf("private error: %s", err)
	}

	err = config.ChangePassword("alice", "aFreshPassword", private)
	if nil != err {
		t.Fatalf("change password error: %s", err)
	}

	_, err = config.Private(testPassword, "alice")
	if fault.WrongPassword != err {
		t.Fatalf("old password error: %q  expected: %q", err, fault.WrongPassword)
	}

	recovered, err := config.Private("aFreshPassword", "alice")
	if nil != err {
		t.Fatalf("new password error: %s", err)
	}
	if testKeyHex != recovered.KeyPair.PrivateKeyHex() {
		t.Fatalf("private key: %s  expected: %s", recovered.KeyPair.PrivateKeyHex(), testKeyHex)
	}

	err = config.ChangePassword("nobody", "x", private)
	if fault.IdentityNameNotFound != err {
		t.Fatalf("unknown name error: %q  expected: %q", err, fault.IdentityNameNotFound)
	}
}
