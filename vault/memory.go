// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/storage"
)

// MemoryService - map backed registry for tests
//
// writes take effect immediately, the transaction argument is
// ignored, so an aborted caller leaves entries behind; tests that
// need rollback behaviour use a LocalService over a real database
type MemoryService struct {
	sync.Mutex
	registered map[Handle]uint64
	granted    map[string]uint64
}

// NewMemoryService - create an empty registry
func NewMemoryService() *MemoryService {
	return &MemoryService{
		registered: map[Handle]uint64{},
		granted:    map[string]uint64{},
	}
}

// Ingest - check an attested payload and record its registration
func (s *MemoryService) Ingest(
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

	s.Lock()
	s.registered[handle] = when
	s.Unlock()

	return handle, nil
}

// Grant - record access for a recorder
func (s *MemoryService) Grant(
	trx storage.Transaction,
	handle Handle,
	recorder *account.Account,
	when uint64,
) {
	s.Lock()
	s.granted[string(grantKey(handle, recorder.Bytes()))] = when
	s.Unlock()
}

// GrantSelf - record access for the ledger service itself
func (s *MemoryService) GrantSelf(trx storage.Transaction, handle Handle, when uint64) {
	s.Lock()
	s.granted[string(grantKey(handle, selfGrantee[:]))] = when
	s.Unlock()
}

// CanAccess - check a recorder was granted access to a payload
func (s *MemoryService) CanAccess(handle Handle, recorder *account.Account) bool {
	if nil == recorder {
		return false
	}
	s.Lock()
	_, ok := s.granted[string(grantKey(handle, recorder.Bytes()))]
	s.Unlock()
	return ok
}

// Registered - check a payload was ingested
func (s *MemoryService) Registered(handle Handle) bool {
	s.Lock()
	_, ok := s.registered[handle]
	s.Unlock()
	return ok
}
