// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/prometheus/common/log"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/storage"
)

// Restorer - interface to restore data from a records file
type Restorer interface {
	Restore() error
}

// NewRestorer - create object with Restorer interface
//
// value is one saved chain entry, the record type packed inside it
// selects the chain the entry returns to
func NewRestorer(id uint64, value []byte) (Restorer, error) {
	stored, err := storedFromBytes(value)
	if nil != err {
		return nil, err
	}

	unpacked, _, err := stored.packed.Unpack()
	if nil != err {
		return nil, err
	}

	switch t := unpacked.(type) {
	case *ledgerrecord.TemperatureLog:
		return &recordRestoreData{
			id:       id,
			value:    value,
			chain:    &globalData.temperature,
			recorder: t.Recorder,
		}, nil
	case *ledgerrecord.KeyEntry:
		return &recordRestoreData{
			id:       id,
			value:    value,
			chain:    &globalData.key,
			recorder: t.Recorder,
		}, nil
	}
	return nil, nil
}

type recordRestoreData struct {
	id       uint64
	value    []byte
	chain    *chain
	recorder *account.Account
}

// Restore - re-insert one chain entry and extend the recorder index
//
// entries must arrive in saved order so the dense id numbering is
// preserved
func (r *recordRestoreData) Restore() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if next := nextId(r.chain.records); next != r.id {
		msg := fmt.Errorf("restore out of order: id: %d  expected: %d", r.id, next)
		log.Errorf("%s", msg)
		return msg
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Put(r.chain.records, recordKey(r.id), r.value, []byte{})
	indexAdd(trx, *r.chain, r.recorder, r.id)

	err = trx.Commit()
	if nil != err {
		log.Errorf("fail to restore record: %s", err)
		return err
	}

	return nil
}
