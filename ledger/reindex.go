// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/storage"
)

// Reindex - rebuild the derived recorder lists from the chains
//
// run while the daemon is still in resynchronise mode, before any RPC
// is served; existing index entries are replaced so a partial index
// is never left behind
func Reindex() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	log := globalData.log
	log.Warn("reindex: rebuilding recorder lists…")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, c := range []chain{globalData.temperature, globalData.key} {
		err = clearChainIndex(trx, c)
		if nil != err {
			trx.Abort()
			return err
		}
		err = reindexChain(trx, c)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	err = trx.Commit()
	if nil != err {
		log.Criticalf("reindex commit error: %s", err)
		return err
	}

	log.Warn("reindex: done")
	return nil
}

// stage deletion of every entry of a chain's index pools
func clearChainIndex(trx storage.Transaction, c chain) error {
	for _, pool := range []storage.Handle{c.nextCount, c.ownerList} {
		p := pool
		err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
			trx.Delete(p, key)
			return nil
		})
		if nil != err {
			return err
		}
	}
	return nil
}

// rebuild one chain's recorder lists by scanning its records
//
// counts accumulate in memory, a staged delete is not masked by the
// transaction cache so trx reads cannot be used while rebuilding
func reindexChain(trx storage.Transaction, c chain) error {

	counts := make(map[[account.AddressSize]byte]uint64)

	err := c.records.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.RecordTruncated
		}
		id := binary.BigEndian.Uint64(key)

		stored, err := storedFromBytes(value)
		if nil != err {
			return err
		}

		unpacked, _, err := stored.packed.Unpack()
		if nil != err {
			return err
		}

		var recorder *account.Account
		switch r := unpacked.(type) {
		case *ledgerrecord.TemperatureLog:
			recorder = r.Recorder
		case *ledgerrecord.KeyEntry:
			recorder = r.Recorder
		default:
			return fault.NotRecordPack
		}

		var owner [account.AddressSize]byte
		copy(owner[:], recorder.Bytes())

		n := counts[owner]
		counts[owner] = n + 1
		trx.PutN(c.ownerList, listKey(recorder, n), id)

		return nil
	})
	if nil != err {
		return err
	}

	for owner, count := range counts {
		trx.PutN(c.nextCount, owner[:], count)
	}
	return nil
}
