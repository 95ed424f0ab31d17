// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/storage"
)

// LocalService - pool backed registry used by the running daemon
type LocalService struct {
	ciphertexts storage.Handle
	grants      storage.Handle
}

// NewLocalService - create a registry over the given pools
func NewLocalService(ciphertexts storage.Handle, grants storage.Handle) *LocalService {
	return &LocalService{
		ciphertexts: ciphertexts,
		grants:      grants,
	}
}

// Ingest - check an attested payload and stage its registration
//
// the registration value is: timestamp(8) ++ external handle(32) ++
// keccak of the proof(32); resubmitting the same payload refreshes
// the timestamp and nothing else
func (s *LocalService) Ingest(
	trx storage.Transaction,
	external ExternalHandle,
	proof []byte,
	when uint64,
) (Handle, error) {
	err := checkProof(proof)
	if nil != err {
		return Handle{}, err
	}

	handle := deriveHandle(external, proof)

	value := make([]byte, 8, 8+ExternalHandleSize+HandleSize)
	binary.BigEndian.PutUint64(value, when)
	value = append(value, external[:]...)
	value = append(value, crypto.Keccak256(proof)...)
	trx.Put(s.ciphertexts, handle[:], value, []byte{})

	return handle, nil
}

// Grant - stage access for a recorder
//
// grants are only ever added, an update leaves the grants on the
// replaced payload in place
func (s *LocalService) Grant(
	trx storage.Transaction,
	handle Handle,
	recorder *account.Account,
	when uint64,
) {
	trx.PutN(s.grants, grantKey(handle, recorder.Bytes()), when)
}

// GrantSelf - stage access for the ledger service itself
func (s *LocalService) GrantSelf(trx storage.Transaction, handle Handle, when uint64) {
	trx.PutN(s.grants, grantKey(handle, selfGrantee[:]), when)
}

// CanAccess - check a recorder was granted access to a payload
func (s *LocalService) CanAccess(handle Handle, recorder *account.Account) bool {
	if nil == recorder {
		return false
	}
	return s.grants.Has(grantKey(handle, recorder.Bytes()))
}

// Registered - check a payload was ingested
func (s *LocalService) Registered(handle Handle) bool {
	return s.ciphertexts.Has(handle[:])
}
