// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/util"
)

// purpose tags for the signing digests
//
// every digest starts with a tag unique to the operation kind so a
// signature collected for one operation cannot be replayed to
// authorize a different one
const (
	temperatureTag = "record"
	keyStoreTag    = "store"
	keyUpdateTag   = "update"
)

// pack TemperatureLog
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the unsigned signing digest on signature failure - so
//       the caller can produce the signature
func (log *TemperatureLog) Pack(recorder *account.Account) (Packed, error) {

	if nil == log.Recorder || nil == recorder {
		return nil, fault.InvalidRecorderAddress
	}

	if 0 == len(log.Location) {
		return nil, fault.LocationIsEmpty
	}
	if utf8.RuneCountInString(log.Location) > maxLocationLength {
		return nil, fault.LocationTooLong
	}

	if 0 == len(log.Cargo) {
		return nil, fault.CargoIsEmpty
	}
	if utf8.RuneCountInString(log.Cargo) > maxCargoLength {
		return nil, fault.CargoTooLong
	}

	// signature binds tag, claimed recorder and all caller supplied content
	digest := crypto.Keccak256(
		[]byte(temperatureTag),
		log.Recorder.Bytes(),
		crypto.Keccak256([]byte(log.Location)),
		crypto.Keccak256([]byte(log.Cargo)),
		flagByte(log.Flagged),
	)

	err := recorder.CheckSignature(digest, log.Signature)
	if nil != err {
		return digest, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(TemperatureLogTag))
	message = appendString(message, log.Location)
	message = appendString(message, log.Cargo)
	message = append(message, flagByte(log.Flagged)...)
	message = appendAccount(message, log.Recorder)

	// Signature Last
	return appendBytes(message, log.Signature), nil
}

// pack KeyEntry
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the unsigned signing digest on signature failure - so
//       the caller can produce the signature
func (entry *KeyEntry) Pack(recorder *account.Account) (Packed, error) {

	if nil == entry.Recorder || nil == recorder {
		return nil, fault.InvalidRecorderAddress
	}

	if 0 == len(entry.Name) {
		return nil, fault.KeyNameIsEmpty
	}
	if utf8.RuneCountInString(entry.Name) > maxKeyNameLength {
		return nil, fault.KeyNameTooLong
	}

	digest := crypto.Keccak256(
		[]byte(keyStoreTag),
		entry.Recorder.Bytes(),
		crypto.Keccak256([]byte(entry.Name)),
	)

	err := recorder.CheckSignature(digest, entry.Signature)
	if nil != err {
		return digest, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(KeyEntryTag))
	message = appendString(message, entry.Name)
	message = appendAccount(message, entry.Recorder)

	// Signature Last
	return appendBytes(message, entry.Signature), nil
}

// pack KeyUpdate
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the unsigned signing digest on signature failure - so
//       the caller can produce the signature
func (update *KeyUpdate) Pack(recorder *account.Account) (Packed, error) {

	if nil == update.Recorder || nil == recorder {
		return nil, fault.InvalidRecorderAddress
	}

	// the entry id is bound as a fixed eight byte big endian value
	entryId := make([]byte, 8)
	binary.BigEndian.PutUint64(entryId, update.EntryId)

	digest := crypto.Keccak256(
		[]byte(keyUpdateTag),
		update.Recorder.Bytes(),
		entryId,
	)

	err := recorder.CheckSignature(digest, update.Signature)
	if nil != err {
		return digest, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(KeyUpdateTag))
	message = appendUint64(message, update.EntryId)
	message = appendAccount(message, update.Recorder)

	// Signature Last
	return appendBytes(message, update.Signature), nil
}

// single byte flag field
func flagByte(flagged bool) []byte {
	if flagged {
		return []byte{0x01}
	}
	return []byte{0x00}
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, recorder *account.Account) Packed {
	data := recorder.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
