// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/hex"

	"github.com/water4699/frost-key-chain/fault"
)

// Proof - the client side encryption attestation as submitted
//
// only carried between the wire form and Ingest, framing checks
// happen there
type Proof []byte

// String - hex string for use by fmt.Print
func (proof Proof) String() string {
	return hex.EncodeToString(proof)
}

// GoString - hex string for use by the fmt package (for %#v)
func (proof Proof) GoString() string {
	return "<proof:" + hex.EncodeToString(proof) + ">"
}

// MarshalText - convert to hex for JSON
func (proof Proof) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(proof)))
	hex.Encode(buffer, proof)
	return buffer, nil
}

// UnmarshalText - convert from hex, with optional 0x prefix
func (proof *Proof) UnmarshalText(s []byte) error {
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidCiphertextProof
	}
	*proof = buffer[:byteCount]
	return nil
}
