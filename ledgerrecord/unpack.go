// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/util"
)

// Unpack - turn a byte slice into a record
//
// Note: the unpacker will access the underlying array of the packed
//       record so p[x:y].Unpack() can read past p[y] and could continue up to cap(p)
//       i.e p[x:cap(p)].Unpack() performs the same operation
//       elements before p[x] cannot be accessed
//       see: https://blog.golang.org/go-slices-usage-and-internals
//
// must cast result to correct type
//
// e.g.
//   log, ok := result.(*ledgerrecord.TemperatureLog)
// or:
//   switch record := result.(type) {
//   case *ledgerrecord.TemperatureLog:
func (record Packed) Unpack() (t Record, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotRecordPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotRecordPack
	}

unpack_switch:
	switch TagType(recordType) {

	case TemperatureLogTag:

		// location
		locationLength, locationOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == locationOffset {
			break unpack_switch
		}
		n += locationOffset
		location := string(record[n : n+locationLength])
		n += locationLength

		// cargo
		cargoLength, cargoOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == cargoOffset {
			break unpack_switch
		}
		n += cargoOffset
		cargo := string(record[n : n+cargoLength])
		n += cargoLength

		// flag is a single byte, either zero or one
		if record[n] > 1 {
			break unpack_switch
		}
		flagged := 1 == record[n]
		n += 1

		// recorder address
		recorderLength, recorderOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == recorderOffset {
			break unpack_switch
		}
		n += recorderOffset
		recorder, err := account.AccountFromBytes(record[n : n+recorderLength])
		if nil != err {
			return nil, 0, err
		}
		n += recorderLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &TemperatureLog{
			Location:  location,
			Cargo:     cargo,
			Flagged:   flagged,
			Recorder:  recorder,
			Signature: signature,
		}
		return r, n, nil

	case KeyEntryTag:

		// name
		nameLength, nameOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == nameOffset {
			break unpack_switch
		}
		n += nameOffset
		name := string(record[n : n+nameLength])
		n += nameLength

		// recorder address
		recorderLength, recorderOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == recorderOffset {
			break unpack_switch
		}
		n += recorderOffset
		recorder, err := account.AccountFromBytes(record[n : n+recorderLength])
		if nil != err {
			return nil, 0, err
		}
		n += recorderLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &KeyEntry{
			Name:      name,
			Recorder:  recorder,
			Signature: signature,
		}
		return r, n, nil

	case KeyUpdateTag:

		// entry id
		entryId, entryIdLength := util.FromVarint64(record[n:])
		if 0 == entryIdLength {
			break unpack_switch
		}
		n += entryIdLength

		// recorder address
		recorderLength, recorderOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == recorderOffset {
			break unpack_switch
		}
		n += recorderOffset
		recorder, err := account.AccountFromBytes(record[n : n+recorderLength])
		if nil != err {
			return nil, 0, err
		}
		n += recorderLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &KeyUpdate{
			EntryId:   entryId,
			Recorder:  recorder,
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.NotRecordPack
}
