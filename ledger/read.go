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
	"github.com/water4699/frost-key-chain/storage"
)

// TemperatureCount - total number of temperature checkpoints
func (d *ledgerData) TemperatureCount() uint64 {
	return nextId(d.temperature.records)
}

// KeyCount - total number of key entries
func (d *ledgerData) KeyCount() uint64 {
	return nextId(d.key.records)
}

// Temperature - metadata of one temperature checkpoint
func (d *ledgerData) Temperature(id uint64) (*TemperatureRecord, error) {
	stored, err := fetchStored(d.temperature.records, id)
	if nil != err {
		return nil, err
	}

	log, err := stored.temperatureLog()
	if nil != err {
		return nil, err
	}

	return &TemperatureRecord{
		Id:        id,
		Recorder:  log.Recorder,
		Location:  log.Location,
		Cargo:     log.Cargo,
		Flagged:   log.Flagged,
		CreatedAt: stored.createdAt,
	}, nil
}

// KeyEntry - metadata of one wrapped key entry
func (d *ledgerData) KeyEntry(id uint64) (*KeyRecord, error) {
	stored, err := fetchStored(d.key.records, id)
	if nil != err {
		return nil, err
	}

	entry, err := stored.keyEntry()
	if nil != err {
		return nil, err
	}

	return &KeyRecord{
		Id:        id,
		Recorder:  entry.Recorder,
		Name:      entry.Name,
		CreatedAt: stored.createdAt,
		UpdatedAt: stored.updatedAt,
	}, nil
}

// TemperaturePayload - ciphertext reference of a temperature checkpoint
func (d *ledgerData) TemperaturePayload(id uint64) (*Payload, error) {
	return payload(d.temperature.records, id)
}

// KeyPayload - ciphertext reference of a key entry
func (d *ledgerData) KeyPayload(id uint64) (*Payload, error) {
	return payload(d.key.records, id)
}

func payload(pool storage.Handle, id uint64) (*Payload, error) {
	stored, err := fetchStored(pool, id)
	if nil != err {
		return nil, err
	}

	return &Payload{
		Id:        id,
		Handle:    stored.handle,
		UpdatedAt: stored.updatedAt,
	}, nil
}

// CountTemperaturesFor - number of temperature checkpoints by a recorder
//
// zero for a recorder that never appended, this is not an error
func (d *ledgerData) CountTemperaturesFor(recorder *account.Account) uint64 {
	return ownerCount(d.temperature.nextCount, recorder)
}

// CountKeysFor - number of key entries by a recorder
func (d *ledgerData) CountKeysFor(recorder *account.Account) uint64 {
	return ownerCount(d.key.nextCount, recorder)
}

// committed read of one recorder's count
func ownerCount(pool storage.Handle, recorder *account.Account) uint64 {
	if nil == recorder {
		return 0
	}
	owner := recorder.Bytes()

	elements, err := pool.NewFetchCursor().Seek(owner).Fetch(1)
	if nil != err || 0 == len(elements) {
		return 0
	}
	if !bytes.Equal(owner, elements[0].Key) || len(elements[0].Value) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(elements[0].Value[:8])
}

// ListTemperaturesFor - page through a recorder's temperature ids
//
// start is the list position to begin from, ids come back in append
// order; a short page means the end of the list was reached
func (d *ledgerData) ListTemperaturesFor(
	recorder *account.Account,
	start uint64,
	count int,
) ([]ListEntry, error) {
	return listFor(d.temperature, recorder, start, count)
}

// ListKeysFor - page through a recorder's key entry ids
func (d *ledgerData) ListKeysFor(
	recorder *account.Account,
	start uint64,
	count int,
) ([]ListEntry, error) {
	return listFor(d.key, recorder, start, count)
}

func listFor(c chain, recorder *account.Account, start uint64, count int) ([]ListEntry, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	if nil == recorder {
		return nil, fault.InvalidRecorderAddress
	}

	owner := recorder.Bytes()

	elements, err := c.ownerList.NewFetchCursor().Seek(listKey(recorder, start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	results := make([]ListEntry, 0, len(elements))
loop:
	for _, element := range elements {
		if account.AddressSize+8 != len(element.Key) ||
			!bytes.Equal(owner, element.Key[:account.AddressSize]) {
			// ran off the end of this recorder's list
			break loop
		}
		if 8 != len(element.Value) {
			return nil, fault.RecordTruncated
		}
		results = append(results, ListEntry{
			N:  binary.BigEndian.Uint64(element.Key[account.AddressSize:]),
			Id: binary.BigEndian.Uint64(element.Value),
		})
	}
	return results, nil
}

// AllTemperatureIds - every temperature checkpoint id in ascending order
//
// a full scan, the result grows with the chain
func (d *ledgerData) AllTemperatureIds() ([]uint64, error) {
	return allIds(d.temperature.records)
}

// AllKeyIds - every key entry id in ascending order
func (d *ledgerData) AllKeyIds() ([]uint64, error) {
	return allIds(d.key.records)
}

func allIds(pool storage.Handle) ([]uint64, error) {
	ids := make([]uint64, 0, 64)

	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.RecordTruncated
		}
		ids = append(ids, binary.BigEndian.Uint64(key))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}

// TemperatureStats - totals over the whole temperature chain
//
// recomputed by a full scan on every call, nothing incremental is
// kept
func (d *ledgerData) TemperatureStats() (*Stats, error) {
	stats := Stats{}

	err := d.temperature.records.NewFetchCursor().Map(func(key []byte, value []byte) error {
		stored, err := storedFromBytes(value)
		if nil != err {
			return err
		}
		log, err := stored.temperatureLog()
		if nil != err {
			return err
		}

		stats.Total += 1
		if log.Flagged {
			stats.Flagged += 1
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return &stats, nil
}
