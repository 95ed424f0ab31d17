// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - registration of externally encrypted payloads
//
// payloads arrive as an attested handle plus an input proof produced
// by the client side encryption tooling; the vault checks the proof
// framing, derives the internal handle every node agrees on, and
// tracks which recorders were granted access to which payload; the
// payload itself is never decrypted here
package vault

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/storage"
)

// sizes of the fixed length fields
const (
	ExternalHandleSize = 32
	HandleSize         = 32
)

// proof framing
const (
	proofVersion   = 0x01
	minProofLength = 65 // version byte + at least 64 bytes of binding data
	maxProofLength = 8192
)

// ExternalHandle - payload handle attested by the submitting client
type ExternalHandle [ExternalHandleSize]byte

// Handle - internal payload handle derived during ingest
type Handle [HandleSize]byte

// Service - operations of the encrypted value registry
//
// the write operations stage into the supplied transaction so a
// failing record submission leaves no vault state behind
type Service interface {
	Ingest(trx storage.Transaction, external ExternalHandle, proof []byte, when uint64) (Handle, error)
	Grant(trx storage.Transaction, handle Handle, recorder *account.Account, when uint64)
	GrantSelf(trx storage.Transaction, handle Handle, when uint64)
	CanAccess(handle Handle, recorder *account.Account) bool
	Registered(handle Handle) bool
}

// the reserved grantee standing for the ledger service itself
//
// a real recorder is a keccak hash of a public key so the zero
// value cannot collide with one
var selfGrantee [account.AddressSize]byte

// ExternalHandleFromBytes - convert a byte slice, checking the length
func ExternalHandleFromBytes(b []byte) (ExternalHandle, error) {
	external := ExternalHandle{}
	if ExternalHandleSize != len(b) {
		return external, fault.InvalidCiphertextHandle
	}
	copy(external[:], b)
	return external, nil
}

// Bytes - byte slice form
func (external ExternalHandle) Bytes() []byte {
	return external[:]
}

// String - hex string for use by fmt.Print
func (external ExternalHandle) String() string {
	return hex.EncodeToString(external[:])
}

// MarshalText - convert to hex for JSON
func (external ExternalHandle) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(external)))
	hex.Encode(buffer, external[:])
	return buffer, nil
}

// UnmarshalText - convert from hex, with optional 0x prefix
func (external *ExternalHandle) UnmarshalText(s []byte) error {
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	if hex.EncodedLen(ExternalHandleSize) != len(s) {
		return fault.InvalidCiphertextHandle
	}
	buffer := make([]byte, ExternalHandleSize)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidCiphertextHandle
	}
	copy(external[:], buffer)
	return nil
}

// HandleFromBytes - convert a byte slice, checking the length
func HandleFromBytes(b []byte) (Handle, error) {
	handle := Handle{}
	if HandleSize != len(b) {
		return handle, fault.InvalidCiphertextHandle
	}
	copy(handle[:], b)
	return handle, nil
}

// Bytes - byte slice form
func (handle Handle) Bytes() []byte {
	return handle[:]
}

// String - hex string for use by fmt.Print
func (handle Handle) String() string {
	return hex.EncodeToString(handle[:])
}

// MarshalText - convert to hex for JSON
func (handle Handle) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(handle)))
	hex.Encode(buffer, handle[:])
	return buffer, nil
}

// UnmarshalText - convert from hex, with optional 0x prefix
func (handle *Handle) UnmarshalText(s []byte) error {
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	if hex.EncodedLen(HandleSize) != len(s) {
		return fault.InvalidCiphertextHandle
	}
	buffer := make([]byte, HandleSize)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidCiphertextHandle
	}
	copy(handle[:], buffer)
	return nil
}

// the proof cannot be verified here, only its framing is checked,
// verification is the client side tooling's concern
func checkProof(proof []byte) error {
	if len(proof) < minProofLength || len(proof) > maxProofLength {
		return fault.InvalidCiphertextProof
	}
	if proofVersion != proof[0] {
		return fault.InvalidCiphertextProof
	}
	return nil
}

// every node derives the same internal handle for the same submission
func deriveHandle(external ExternalHandle, proof []byte) Handle {
	handle := Handle{}
	copy(handle[:], crypto.Keccak256(external[:], proof))
	return handle
}

// key of a grant entry
func grantKey(handle Handle, grantee []byte) []byte {
	key := make([]byte, 0, HandleSize+account.AddressSize)
	key = append(key, handle[:]...)
	key = append(key, grantee...)
	return key
}
