// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/messagebus"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// RecordTemperature - append a temperature checkpoint to its chain
//
// returns the id assigned to the new record
func (d *ledgerData) RecordTemperature(
	log *ledgerrecord.TemperatureLog,
	external vault.ExternalHandle,
	proof []byte,
) (uint64, error) {
	if nil == log {
		return 0, fault.MissingParameters
	}
	return d.appendRecord(log, log.Recorder, d.temperature, external, proof, "temperature")
}

// StoreKey - append a wrapped key entry to its chain
//
// returns the id assigned to the new record
func (d *ledgerData) StoreKey(
	entry *ledgerrecord.KeyEntry,
	external vault.ExternalHandle,
	proof []byte,
) (uint64, error) {
	if nil == entry {
		return 0, fault.MissingParameters
	}
	return d.appendRecord(entry, entry.Recorder, d.key, external, proof, "key")
}

// the shared append path
//
// order: validate fields and check the signature, ingest the
// ciphertext, assign the next dense id, store the record, extend the
// recorder index, stage the access grants; a single commit makes all
// of it visible at once or none of it
func (d *ledgerData) appendRecord(
	record ledgerrecord.Record,
	recorder *account.Account,
	c chain,
	external vault.ExternalHandle,
	proof []byte,
	command string,
) (uint64, error) {

	d.Lock()
	defer d.Unlock()

	if !d.initialised {
		return 0, fault.NotInitialised
	}

	packed, err := record.Pack(recorder)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	when := d.now()

	handle, err := d.vault.Ingest(trx, external, proof, when)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	id := nextId(c.records)

	value, additional := storedParts(when, when, handle, packed)
	trx.Put(c.records, recordKey(id), value, additional)

	indexAdd(trx, c, recorder, id)

	d.vault.Grant(trx, handle, recorder, when)
	d.vault.GrantSelf(trx, handle, when)

	err = trx.Commit()
	if nil != err {
		d.log.Criticalf("append %s commit error: %s", command, err)
		return 0, err
	}

	d.log.Infof("appended %s id: %d  recorder: %s", command, id, recorder)
	messagebus.Bus.Broadcast.Send(command, recordKey(id), packed)

	return id, nil
}

// extend a recorder's list with a newly assigned id
//
// reads go through the transaction so repeated calls inside one
// transaction see the counts they already staged
func indexAdd(trx storage.Transaction, c chain, recorder *account.Account, id uint64) {
	owner := recorder.Bytes()

	count, _ := trx.GetN(c.nextCount, owner)
	trx.PutN(c.nextCount, owner, count+1)
	trx.PutN(c.ownerList, listKey(recorder, count), id)
}
