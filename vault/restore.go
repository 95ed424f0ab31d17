// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/storage"
)

// stored entry sizes used to validate a restore
const (
	ciphertextValueSize = 8 + ExternalHandleSize + HandleSize
	grantKeySize        = HandleSize + account.AddressSize
	grantValueSize      = 8
)

// RestoreCiphertext - stage a saved registration entry back into the pool
//
// only used by the records restore command, the entry was produced by
// Ingest so only its framing is checked here
func (s *LocalService) RestoreCiphertext(trx storage.Transaction, key []byte, value []byte) error {
	if HandleSize != len(key) || ciphertextValueSize != len(value) {
		return fault.RecordTruncated
	}
	trx.Put(s.ciphertexts, key, value, []byte{})
	return nil
}

// RestoreGrant - stage a saved access grant back into the pool
func (s *LocalService) RestoreGrant(trx storage.Transaction, key []byte, value []byte) error {
	if grantKeySize != len(key) || grantValueSize != len(value) {
		return fault.RecordTruncated
	}
	trx.Put(s.grants, key, value, []byte{})
	return nil
}
