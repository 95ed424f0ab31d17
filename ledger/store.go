// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// offsets into a stored record value
//
//	createdAt(8) ++ updatedAt(8) ++ handle(32) ++ packed record
const (
	createdAtFinish = 8
	updatedAtFinish = createdAtFinish + 8
	handleFinish    = updatedAtFinish + vault.HandleSize
)

// storedRecord - decoded form of one stored value
type storedRecord struct {
	createdAt uint64
	updatedAt uint64
	handle    vault.Handle
	packed    ledgerrecord.Packed
}

// encode a stored record as the value/additional pair for Put
func storedParts(
	createdAt uint64,
	updatedAt uint64,
	handle vault.Handle,
	packed ledgerrecord.Packed,
) ([]byte, []byte) {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, createdAt)

	additional := make([]byte, 8, 8+vault.HandleSize+len(packed))
	binary.BigEndian.PutUint64(additional, updatedAt)
	additional = append(additional, handle[:]...)
	additional = append(additional, packed...)

	return value, additional
}

// decode a stored record value
func storedFromBytes(buffer []byte) (*storedRecord, error) {
	if len(buffer) <= handleFinish {
		return nil, fault.RecordTruncated
	}

	handle, err := vault.HandleFromBytes(buffer[updatedAtFinish:handleFinish])
	if nil != err {
		return nil, err
	}

	packed := make(ledgerrecord.Packed, len(buffer)-handleFinish)
	copy(packed, buffer[handleFinish:])

	return &storedRecord{
		createdAt: binary.BigEndian.Uint64(buffer[:createdAtFinish]),
		updatedAt: binary.BigEndian.Uint64(buffer[createdAtFinish:updatedAtFinish]),
		handle:    handle,
		packed:    packed,
	}, nil
}

// temperatureLog - unpack the record as a temperature checkpoint
func (stored *storedRecord) temperatureLog() (*ledgerrecord.TemperatureLog, error) {
	unpacked, _, err := stored.packed.Unpack()
	if nil != err {
		return nil, err
	}
	log, ok := unpacked.(*ledgerrecord.TemperatureLog)
	if !ok {
		return nil, fault.NotRecordPack
	}
	return log, nil
}

// keyEntry - unpack the record as a wrapped key entry
func (stored *storedRecord) keyEntry() (*ledgerrecord.KeyEntry, error) {
	unpacked, _, err := stored.packed.Unpack()
	if nil != err {
		return nil, err
	}
	entry, ok := unpacked.(*ledgerrecord.KeyEntry)
	if !ok {
		return nil, fault.NotRecordPack
	}
	return entry, nil
}

// recordKey - database key of a record id
func recordKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// listKey - database key of one recorder list element
func listKey(recorder *account.Account, n uint64) []byte {
	key := make([]byte, 0, account.AddressSize+8)
	key = append(key, recorder.Bytes()...)
	key = append(key, recordKey(n)...)
	return key
}

// nextId - id for the next append to a chain
//
// ids are dense so this is one past the last committed key; it also
// serves as the total count of the chain
func nextId(pool storage.Handle) uint64 {
	last, found := pool.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}

// fetchStored - read one committed record by id
//
// the read goes through an iterator so staged writes of an open
// transaction are never visible; with dense ids a cursor miss is
// exactly the id out of range case
func fetchStored(pool storage.Handle, id uint64) (*storedRecord, error) {
	key := recordKey(id)

	elements, err := pool.NewFetchCursor().Seek(key).Fetch(1)
	if nil != err {
		return nil, err
	}
	if 0 == len(elements) || !bytes.Equal(key, elements[0].Key) {
		return nil, fault.RecordNotFound
	}

	return storedFromBytes(elements[0].Value)
}
