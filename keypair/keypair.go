// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - client side secp256k1 signing keys
//
// the daemon only ever sees accounts and recoverable signatures, the
// private key handling here is for the command line client
package keypair

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
)

// the same prefix the daemon applies before recovering the signer, so
// signatures produced here match ones from ordinary wallet tooling
const signedMessagePrefix = "\x19Ethereum Signed Message:\n32"

// KeyPair - structure to hold the signing key and its derived account
type KeyPair struct {
	PrivateKey *ecdsa.PrivateKey
	Account    *account.Account
}

// RawKeyPair - hex version of a key pair
type RawKeyPair struct {
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewPrivateKeyHex - create a new private key from secure random data
func NewPrivateKeyHex() (string, error) {
	privateKey, err := crypto.GenerateKey()
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(crypto.FromECDSA(privateKey)), nil
}

// MakeRawKeyPair - create new private key and derive its account
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	privateKeyHex, err := NewPrivateKeyHex()
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromHex(privateKeyHex)
}

// MakeRawKeyPairFromHex - recreate a key pair from a stored hex private key
func MakeRawKeyPairFromHex(privateKeyHex string) (*RawKeyPair, *KeyPair, error) {

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if nil != err {
		return nil, nil, fault.InvalidPrivateKey
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	acc, err := account.AccountFromBytes(address.Bytes())
	if nil != err {
		return nil, nil, err
	}

	keyPair := KeyPair{
		PrivateKey: privateKey,
		Account:    acc,
	}

	rawKeyPair := RawKeyPair{
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(crypto.FromECDSAPub(&privateKey.PublicKey)),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privateKey)),
	}

	return &rawKeyPair, &keyPair, nil
}

// AccountFromHexPublicKey - create an account from an uncompressed hex public key
func AccountFromHexPublicKey(publicKey string) (*account.Account, error) {

	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, err
	}

	return account.AccountFromPublicKey(k)
}

// PrivateKeyHex - hex form of the private key for re-encryption
func (pair *KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(pair.PrivateKey))
}

// Sign - produce a recoverable signature over a signing digest
//
// the digest is the value a record Pack returns when the signature is
// still missing
func (pair *KeyPair) Sign(digest []byte) (account.Signature, error) {

	if account.DigestSize != len(digest) {
		return nil, fault.InvalidSignature
	}

	prefixed := crypto.Keccak256([]byte(signedMessagePrefix), digest)

	signature, err := crypto.Sign(prefixed, pair.PrivateKey)
	if nil != err {
		return nil, err
	}
	return signature, nil
}
