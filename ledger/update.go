// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/messagebus"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// UpdateKey - replace the sealed payload of an existing key entry
//
// precondition order: the entry must exist, the caller must be its
// recorder, the clock must have moved past the last update, the
// signature must be valid for the update digest; only then is the new
// ciphertext ingested and the entry rewritten in place
//
// returns the updatedAt timestamp given to the entry
func (d *ledgerData) UpdateKey(
	update *ledgerrecord.KeyUpdate,
	external vault.ExternalHandle,
	proof []byte,
) (uint64, error) {
	if nil == update {
		return 0, fault.MissingParameters
	}

	d.Lock()
	defer d.Unlock()

	if !d.initialised {
		return 0, fault.NotInitialised
	}

	stored, err := fetchStored(d.key.records, update.EntryId)
	if nil != err {
		return 0, err
	}

	entry, err := stored.keyEntry()
	if nil != err {
		return 0, err
	}

	if !entry.Recorder.IsSame(update.Recorder) {
		return 0, fault.NotOwner
	}

	when := d.now()
	if stored.updatedAt >= when {
		return 0, fault.StaleTimestamp
	}

	packedUpdate, err := update.Pack(update.Recorder)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	handle, err := d.vault.Ingest(trx, external, proof, when)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	// the original entry record stays, only the payload reference and
	// updatedAt move; grants on the replaced payload are not revoked
	value, additional := storedParts(stored.createdAt, when, handle, stored.packed)
	trx.Put(d.key.records, recordKey(update.EntryId), value, additional)

	d.vault.Grant(trx, handle, update.Recorder, when)
	d.vault.GrantSelf(trx, handle, when)

	err = trx.Commit()
	if nil != err {
		d.log.Criticalf("update commit error: %s", err)
		return 0, err
	}

	d.log.Infof("updated key id: %d  recorder: %s", update.EntryId, update.Recorder)
	messagebus.Bus.Broadcast.Send("update", recordKey(update.EntryId), packedUpdate)

	return when, nil
}
