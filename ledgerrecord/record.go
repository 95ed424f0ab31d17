// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"encoding/hex"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	TemperatureLogTag = TagType(iota) // temperature checkpoint for a cargo
	KeyEntryTag       = TagType(iota) // store a named sealed key
	KeyUpdateTag      = TagType(iota) // replace the sealed material of an entry

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack(recorder *account.Account) (Packed, error)
}

// rune counts for the various free text fields
const (
	maxLocationLength = 100
	maxCargoLength    = 200
	maxKeyNameLength  = 100
)

// TemperatureLog - the unpacked temperature checkpoint structure
type TemperatureLog struct {
	Location  string            `json:"location"`  // utf-8
	Cargo     string            `json:"cargo"`     // utf-8
	Flagged   bool              `json:"flagged"`   // true when out of safe range
	Recorder  *account.Account  `json:"recorder"`  // checksum hex
	Signature account.Signature `json:"signature"` // hex
}

// KeyEntry - the unpacked key chain entry structure
type KeyEntry struct {
	Name      string            `json:"name"`      // utf-8
	Recorder  *account.Account  `json:"recorder"`  // checksum hex
	Signature account.Signature `json:"signature"` // hex
}

// KeyUpdate - the unpacked key chain update structure
//
// replaces the sealed material of an existing entry, the entry id is
// bound into the signature so an authorization for one entry cannot
// be replayed against another
type KeyUpdate struct {
	EntryId   uint64            `json:"entryId,string"` // unsigned 0..N
	Recorder  *account.Account  `json:"recorder"`       // checksum hex
	Signature account.Signature `json:"signature"`      // hex
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *TemperatureLog, TemperatureLog:
		return "TemperatureLog", true

	case *KeyEntry, KeyEntry:
		return "KeyEntry", true

	case *KeyUpdate, KeyUpdate:
		return "KeyUpdate", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed to its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
