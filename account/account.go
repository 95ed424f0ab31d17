// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/fault"
)

// AddressSize - byte length of a recorder address
const AddressSize = common.AddressLength

// DigestSize - byte length of a signing digest
const DigestSize = 32

// prefix applied to a digest before signature recovery so that
// signatures produced by ordinary wallet signing calls are accepted
const signedMessagePrefix = "\x19Ethereum Signed Message:\n32"

// Account - the identity of a recorder
//
// this is the keccak derived twenty byte address of a secp256k1
// public key, displayed in its mixed case checksum form
type Account struct {
	address common.Address
}

// AccountFromHexString - convert a mixed case hex string to an account
func AccountFromHexString(accountHex string) (*Account, error) {

	if !common.IsHexAddress(accountHex) {
		return nil, fault.InvalidRecorderAddress
	}

	return &Account{
		address: common.HexToAddress(accountHex),
	}, nil
}

// AccountFromBytes - convert a byte encoded address to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	if AddressSize != len(accountBytes) {
		return nil, fault.InvalidRecorderAddress
	}

	account := &Account{}
	copy(account.address[:], accountBytes)
	return account, nil
}

// AccountFromPublicKey - derive the account of a secp256k1 public key
//
// the key is the uncompressed 65 byte form produced by signature
// recovery
func AccountFromPublicKey(publicKey []byte) (*Account, error) {

	key, err := crypto.UnmarshalPubkey(publicKey)
	if nil != err {
		return nil, fault.InvalidPublicKey
	}

	return &Account{
		address: crypto.PubkeyToAddress(*key),
	}, nil
}

// Bytes - byte slice form of the address
func (account *Account) Bytes() []byte {
	return account.address.Bytes()
}

// String - mixed case checksum form of the address
func (account *Account) String() string {
	return account.address.Hex()
}

// GoString - hex string for use by the fmt package (for %#v)
func (account *Account) GoString() string {
	return "<account:" + account.address.Hex() + ">"
}

// IsSame - check whether both accounts denote the same recorder
func (account *Account) IsSame(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.address == other.address
}

// CheckSignature - verify that a digest was signed by this account
//
// the digest is wrapped with the signed message prefix before
// recovering the public key, the recovered address must match this
// account exactly
func (account *Account) CheckSignature(digest []byte, signature Signature) error {

	if DigestSize != len(digest) {
		return fault.InvalidSignature
	}
	if SignatureSize != len(signature) {
		return fault.InvalidSignatureLength
	}

	// accept the legacy 27/28 recovery id convention
	sig := make([]byte, SignatureSize)
	copy(sig, signature)
	if sig[SignatureSize-1] >= 27 {
		sig[SignatureSize-1] -= 27
	}
	if sig[SignatureSize-1] > 1 {
		return fault.InvalidSignature
	}

	prefixed := crypto.Keccak256([]byte(signedMessagePrefix), digest)

	publicKey, err := crypto.SigToPub(prefixed, sig)
	if nil != err {
		return fault.InvalidSignature
	}

	if crypto.PubkeyToAddress(*publicKey) != account.address {
		return fault.NotAuthorised
	}
	return nil
}

// MarshalText - convert an account to its checksum hex JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert checksum hex JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromHexString(string(s))
	if nil != err {
		return err
	}
	account.address = a.address
	return nil
}
