// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/messagebus"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// one shipment of frozen seafood checked at three ports, the
// Singapore checkpoint carries the out of range flag
func TestThreePortShipment(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	l := ledger.Get()

	shanghai := makeTemperature(t, shanghaiKeyHex, "Shanghai Port", "Frozen Seafood - 500kg", false)
	singapore := makeTemperature(t, singaporeKeyHex, "Singapore Hub", "Frozen Seafood - 500kg", true)
	losAngeles := makeTemperature(t, losAngelesKeyHex, "Los Angeles Port", "Frozen Seafood - 500kg", false)

	id0 := mustRecord(t, l, shanghai, 0x10)
	id1 := mustRecord(t, l, singapore, 0x11)
	id2 := mustRecord(t, l, losAngeles, 0x12)

	// ids are dense and ascending
	assert.Equal(t, uint64(0), id0, "first id")
	assert.Equal(t, uint64(1), id1, "second id")
	assert.Equal(t, uint64(2), id2, "third id")
	assert.Equal(t, uint64(3), l.TemperatureCount(), "total count")

	ids, err := l.AllTemperatureIds()
	assert.Nil(t, err, "all ids error")
	assert.Equal(t, []uint64{0, 1, 2}, ids, "all ids")

	// metadata round trip
	meta, err := l.Temperature(1)
	assert.Nil(t, err, "metadata error")
	assert.Equal(t, uint64(1), meta.Id, "metadata id")
	assert.Equal(t, "Singapore Hub", meta.Location, "metadata location")
	assert.Equal(t, "Frozen Seafood - 500kg", meta.Cargo, "metadata cargo")
	assert.True(t, meta.Flagged, "metadata flag")
	assert.True(t, meta.Recorder.IsSame(singapore.Recorder), "metadata recorder")
	assert.True(t, meta.CreatedAt > 0, "metadata timestamp")

	// payload handles are the deterministic ingest derivation
	payload, err := l.TemperaturePayload(2)
	assert.Nil(t, err, "payload error")
	assert.Equal(t, expectedHandle(0x12), payload.Handle, "payload handle")

	// each recorder can reach its own payload, the stranger cannot
	svc := vault.NewLocalService(storage.Pool.Ciphertexts, storage.Pool.Grants)
	stranger := makeAccount(t, strangerKeyHex)
	assert.True(t, svc.Registered(payload.Handle), "payload not registered")
	assert.True(t, svc.CanAccess(payload.Handle, losAngeles.Recorder), "owner access")
	assert.False(t, svc.CanAccess(payload.Handle, stranger), "stranger access")

	// per recorder counts and lists
	assert.Equal(t, uint64(1), l.CountTemperaturesFor(shanghai.Recorder), "shanghai count")
	assert.Equal(t, uint64(1), l.CountTemperaturesFor(singapore.Recorder), "singapore count")
	assert.Equal(t, uint64(0), l.CountTemperaturesFor(stranger), "stranger count")

	list, err := l.ListTemperaturesFor(singapore.Recorder, 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(list), "list length")
	assert.Equal(t, uint64(0), list[0].N, "list position")
	assert.Equal(t, uint64(1), list[0].Id, "list id")

	// the flagged checkpoint shows up in the scan
	stats, err := l.TemperatureStats()
	assert.Nil(t, err, "stats error")
	assert.Equal(t, uint64(3), stats.Total, "stats total")
	assert.Equal(t, uint64(1), stats.Flagged, "stats flagged")

	// the key chain is untouched
	assert.Equal(t, uint64(0), l.KeyCount(), "key count")
}

// a rejected submission leaves no trace at all
func TestAppendValidation(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	l := ledger.Get()
	recorder := makeAccount(t, shanghaiKeyHex)

	_, err := l.RecordTemperature(nil, makeExternal(1), makeProof(1))
	assert.Equal(t, fault.MissingParameters, err, "nil record")

	empty := &ledgerrecord.TemperatureLog{
		Location: "",
		Cargo:    "Vaccines - 20 pallets",
		Recorder: recorder,
	}
	_, err = l.RecordTemperature(empty, makeExternal(1), makeProof(1))
	assert.Equal(t, fault.LocationIsEmpty, err, "empty location")

	empty = &ledgerrecord.TemperatureLog{
		Location: "Rotterdam Terminal",
		Cargo:    "",
		Recorder: recorder,
	}
	_, err = l.RecordTemperature(empty, makeExternal(1), makeProof(1))
	assert.Equal(t, fault.CargoIsEmpty, err, "empty cargo")

	// flip the flag after signing, the signature no longer binds
	tampered := makeTemperature(t, shanghaiKeyHex, "Rotterdam Terminal", "Vaccines - 20 pallets", false)
	tampered.Flagged = true
	_, err = l.RecordTemperature(tampered, makeExternal(1), makeProof(1))
	assert.Equal(t, fault.NotAuthorised, err, "tampered flag")

	// correct signature, broken proof framing
	good := makeTemperature(t, shanghaiKeyHex, "Rotterdam Terminal", "Vaccines - 20 pallets", true)

	badVersion := makeProof(2)
	badVersion[0] = 0x02
	_, err = l.RecordTemperature(good, makeExternal(2), badVersion)
	assert.Equal(t, fault.InvalidCiphertextProof, err, "bad proof version")

	short := makeProof(2)[:64]
	_, err = l.RecordTemperature(good, makeExternal(2), short)
	assert.Equal(t, fault.InvalidCiphertextProof, err, "short proof")

	// nothing was appended and no id was burned
	assert.Equal(t, uint64(0), l.TemperatureCount(), "count after rejects")
	ids, err := l.AllTemperatureIds()
	assert.Nil(t, err, "all ids error")
	assert.Equal(t, 0, len(ids), "ids after rejects")
	assert.Equal(t, uint64(0), l.CountTemperaturesFor(recorder), "recorder count after rejects")

	id := mustRecord(t, l, good, 0x02)
	assert.Equal(t, uint64(0), id, "first accepted id")
	assert.Equal(t, uint64(1), l.TemperatureCount(), "count after accept")
}

func TestNotFoundBoundaries(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	l := ledger.Get()

	_, err := l.Temperature(0)
	assert.Equal(t, fault.RecordNotFound, err, "empty chain metadata")
	_, err = l.TemperaturePayload(0)
	assert.Equal(t, fault.RecordNotFound, err, "empty chain payload")
	_, err = l.KeyEntry(0)
	assert.Equal(t, fault.RecordNotFound, err, "empty key chain")

	log := makeTemperature(t, shanghaiKeyHex, "Busan Port", "Flower Bulbs - 2t", false)
	mustRecord(t, l, log, 0x21)

	_, err = l.Temperature(0)
	assert.Nil(t, err, "last id readable")

	// one past the end
	_, err = l.Temperature(1)
	assert.Equal(t, fault.RecordNotFound, err, "id at count")
	_, err = l.TemperaturePayload(1)
	assert.Equal(t, fault.RecordNotFound, err, "payload at count")
}

// store then update a wrapped key under a frozen clock
func TestKeyChainStoreAndUpdate(t *testing.T) {
	clock := uint64(1700000000)
	setup(t, func() uint64 { return clock })
	defer teardown(t)

	l := ledger.Get()

	entry := makeKeyEntry(t, shanghaiKeyHex, "reefer-7 master key")
	id := mustStore(t, l, entry, 0x41)
	assert.Equal(t, uint64(0), id, "entry id")

	stored, err := l.KeyEntry(0)
	assert.Nil(t, err, "entry read error")
	assert.Equal(t, "reefer-7 master key", stored.Name, "entry name")
	assert.Equal(t, clock, stored.CreatedAt, "created at")
	assert.Equal(t, clock, stored.UpdatedAt, "updated at")

	payload, err := l.KeyPayload(0)
	assert.Nil(t, err, "payload read error")
	assert.Equal(t, expectedHandle(0x41), payload.Handle, "stored handle")

	// replace the sealed material later on
	createdAt := clock
	clock += 600

	update := makeKeyUpdate(t, shanghaiKeyHex, 0)
	updatedAt, err := l.UpdateKey(update, makeExternal(0x42), makeProof(0x42))
	assert.Nil(t, err, "update error")
	assert.Equal(t, clock, updatedAt, "updated at result")

	stored, err = l.KeyEntry(0)
	assert.Nil(t, err, "entry reread error")
	assert.Equal(t, "reefer-7 master key", stored.Name, "name after update")
	assert.Equal(t, createdAt, stored.CreatedAt, "created at unchanged")
	assert.Equal(t, clock, stored.UpdatedAt, "updated at moved")

	payload, err = l.KeyPayload(0)
	assert.Nil(t, err, "payload reread error")
	assert.Equal(t, expectedHandle(0x42), payload.Handle, "replaced handle")

	// grants on the replaced payload stay valid, the new payload is
	// granted as well
	svc := vault.NewLocalService(storage.Pool.Ciphertexts, storage.Pool.Grants)
	assert.True(t, svc.CanAccess(expectedHandle(0x41), entry.Recorder), "old grant kept")
	assert.True(t, svc.CanAccess(expectedHandle(0x42), entry.Recorder), "new grant")

	// the update did not grow the chain or the index
	assert.Equal(t, uint64(1), l.KeyCount(), "key count")
	assert.Equal(t, uint64(1), l.CountKeysFor(entry.Recorder), "recorder count")
}

// precondition order of the update path
func TestUpdateGuards(t *testing.T) {
	clock := uint64(1700000000)
	setup(t, func() uint64 { return clock })
	defer teardown(t)

	l := ledger.Get()

	entry := makeKeyEntry(t, shanghaiKeyHex, "cold room badge key")
	mustStore(t, l, entry, 0x51)

	// unknown id
	missing := makeKeyUpdate(t, shanghaiKeyHex, 99)
	_, err := l.UpdateKey(missing, makeExternal(0x52), makeProof(0x52))
	assert.Equal(t, fault.RecordNotFound, err, "unknown id")

	// someone else's entry, the signature itself is valid
	foreign := makeKeyUpdate(t, singaporeKeyHex, 0)
	_, err = l.UpdateKey(foreign, makeExternal(0x52), makeProof(0x52))
	assert.Equal(t, fault.NotOwner, err, "foreign recorder")

	// the owner but the clock has not moved
	stale := makeKeyUpdate(t, shanghaiKeyHex, 0)
	_, err = l.UpdateKey(stale, makeExternal(0x52), makeProof(0x52))
	assert.Equal(t, fault.StaleTimestamp, err, "frozen clock")

	clock += 60

	// the owner claimed but the stranger signed
	forged := &ledgerrecord.KeyUpdate{
		EntryId:  0,
		Recorder: makeAccount(t, shanghaiKeyHex),
	}
	digest, err := forged.Pack(forged.Recorder)
	assert.Equal(t, fault.InvalidSignatureLength, err, "digest pack")
	forged.Signature = signDigest(t, strangerKeyHex, digest)
	_, err = l.UpdateKey(forged, makeExternal(0x52), makeProof(0x52))
	assert.Equal(t, fault.NotAuthorised, err, "forged signature")

	// a valid update but a broken proof
	broken := makeKeyUpdate(t, shanghaiKeyHex, 0)
	badProof := makeProof(0x52)
	badProof[0] = 0x00
	_, err = l.UpdateKey(broken, makeExternal(0x52), badProof)
	assert.Equal(t, fault.InvalidCiphertextProof, err, "broken proof")

	// all rejections left the entry untouched
	stored, err := l.KeyEntry(0)
	assert.Nil(t, err, "entry read error")
	assert.Equal(t, uint64(1700000000), stored.UpdatedAt, "updated at unchanged")
	payload, err := l.KeyPayload(0)
	assert.Nil(t, err, "payload read error")
	assert.Equal(t, expectedHandle(0x51), payload.Handle, "handle unchanged")

	// and a clean update still goes through
	good := makeKeyUpdate(t, shanghaiKeyHex, 0)
	updatedAt, err := l.UpdateKey(good, makeExternal(0x53), makeProof(0x53))
	assert.Nil(t, err, "clean update error")
	assert.Equal(t, clock, updatedAt, "clean update timestamp")
}

// interleaved appends keep every recorder's list a subsequence in
// append order
func TestOwnerIndexPagination(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	l := ledger.Get()

	cargos := []string{"Berries - 3t", "Ice Cream - 1t", "Salmon - 2t", "Butter - 5t", "Peas - 4t"}

	// shanghai appends ids 0 2 4 6 8, singapore 1 3 5 7 9
	for i, cargo := range cargos {
		a := makeTemperature(t, shanghaiKeyHex, "Shanghai Port", cargo, false)
		b := makeTemperature(t, singaporeKeyHex, "Singapore Hub", cargo, 0 == i%2)
		mustRecord(t, l, a, byte(0x60+2*i))
		mustRecord(t, l, b, byte(0x61+2*i))
	}

	shanghai := makeAccount(t, shanghaiKeyHex)
	singapore := makeAccount(t, singaporeKeyHex)

	assert.Equal(t, uint64(10), l.TemperatureCount(), "total count")
	assert.Equal(t, uint64(5), l.CountTemperaturesFor(shanghai), "shanghai count")
	assert.Equal(t, uint64(5), l.CountTemperaturesFor(singapore), "singapore count")

	full, err := l.ListTemperaturesFor(shanghai, 0, 100)
	assert.Nil(t, err, "full list error")
	assert.Equal(t, 5, len(full), "full list length")
	for i, e := range full {
		assert.Equal(t, uint64(i), e.N, "list position")
		assert.Equal(t, uint64(2*i), e.Id, "list id")
	}

	// a page in the middle
	page, err := l.ListTemperaturesFor(singapore, 1, 2)
	assert.Nil(t, err, "page error")
	assert.Equal(t, 2, len(page), "page length")
	assert.Equal(t, uint64(1), page[0].N, "page first position")
	assert.Equal(t, uint64(3), page[0].Id, "page first id")
	assert.Equal(t, uint64(2), page[1].N, "page second position")
	assert.Equal(t, uint64(5), page[1].Id, "page second id")

	// a page past the end is empty, not an error
	page, err = l.ListTemperaturesFor(singapore, 5, 2)
	assert.Nil(t, err, "tail page error")
	assert.Equal(t, 0, len(page), "tail page length")

	// a recorder that never appended
	stranger := makeAccount(t, strangerKeyHex)
	page, err = l.ListTemperaturesFor(stranger, 0, 10)
	assert.Nil(t, err, "stranger list error")
	assert.Equal(t, 0, len(page), "stranger list length")

	// invalid arguments
	_, err = l.ListTemperaturesFor(singapore, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
	_, err = l.ListTemperaturesFor(nil, 0, 10)
	assert.Equal(t, fault.InvalidRecorderAddress, err, "nil recorder")
}

// every committed mutation is announced on the broadcast queue
func TestBroadcastEvents(t *testing.T) {
	clock := uint64(1700000000)
	setup(t, func() uint64 { return clock })
	defer teardown(t)

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release()

	l := ledger.Get()

	log := makeTemperature(t, losAngelesKeyHex, "Oakland Yard", "Grapes - 7t", false)
	id := mustRecord(t, l, log, 0x71)

	entry := makeKeyEntry(t, losAngelesKeyHex, "oakland yard seal key")
	keyId := mustStore(t, l, entry, 0x72)

	clock += 30
	update := makeKeyUpdate(t, losAngelesKeyHex, keyId)
	_, err := l.UpdateKey(update, makeExternal(0x73), makeProof(0x73))
	assert.Nil(t, err, "update error")

	expected := []struct {
		command string
		id      uint64
	}{
		{"temperature", id},
		{"key", keyId},
		{"update", keyId},
	}

	for _, e := range expected {
		select {
		case message := <-queue:
			assert.Equal(t, e.command, message.Command, "command")
			assert.Equal(t, 2, len(message.Parameters), "parameter count")
			assert.Equal(t, 8, len(message.Parameters[0]), "id parameter size")

			unpacked, _, err := ledgerrecord.Packed(message.Parameters[1]).Unpack()
			assert.Nil(t, err, "parameter unpack error")
			assert.NotNil(t, unpacked, "parameter record")
		default:
			t.Fatalf("no %q announcement", e.command)
		}
	}

	// a failed mutation announces nothing
	_, err = l.UpdateKey(update, makeExternal(0x74), makeProof(0x74))
	assert.Equal(t, fault.StaleTimestamp, err, "stale update")
	select {
	case message := <-queue:
		t.Fatalf("unexpected announcement: %q", message.Command)
	default:
	}
}

// damage the derived index then rebuild it from the chains
func TestReindexRebuild(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	l := ledger.Get()

	locations := []string{"Shanghai Port", "Singapore Hub", "Los Angeles Port"}
	keys := []string{shanghaiKeyHex, singaporeKeyHex, losAngelesKeyHex}

	n := byte(0)
	for round := 0; round < 3; round += 1 {
		for i, keyHex := range keys {
			log := makeTemperature(t, keyHex, locations[i], "Cheese Wheels - 900kg", 0 == round)
			mustRecord(t, l, log, 0x80+n)
			n += 1
		}
	}
	entry := makeKeyEntry(t, singaporeKeyHex, "hub gate key")
	mustStore(t, l, entry, 0x80+n)

	shanghai := makeAccount(t, shanghaiKeyHex)
	singapore := makeAccount(t, singaporeKeyHex)
	stranger := makeAccount(t, strangerKeyHex)

	before, err := l.ListTemperaturesFor(shanghai, 0, 100)
	assert.Nil(t, err, "list before error")
	assert.Equal(t, 3, len(before), "list before length")

	// wreck the derived state: zero one count, invent another
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	trx.PutN(storage.Pool.TemperatureNextCount, shanghai.Bytes(), 0)
	trx.PutN(storage.Pool.TemperatureNextCount, stranger.Bytes(), 42)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, uint64(0), l.CountTemperaturesFor(shanghai), "damaged count")
	assert.Equal(t, uint64(42), l.CountTemperaturesFor(stranger), "invented count")

	err = ledger.Reindex()
	assert.Nil(t, err, "reindex error")

	// derived state matches the chains again
	assert.Equal(t, uint64(3), l.CountTemperaturesFor(shanghai), "rebuilt count")
	assert.Equal(t, uint64(0), l.CountTemperaturesFor(stranger), "invented count cleared")
	assert.Equal(t, uint64(1), l.CountKeysFor(singapore), "rebuilt key count")

	after, err := l.ListTemperaturesFor(shanghai, 0, 100)
	assert.Nil(t, err, "list after error")
	assert.Equal(t, before, after, "rebuilt list")

	keyList, err := l.ListKeysFor(singapore, 0, 100)
	assert.Nil(t, err, "key list error")
	assert.Equal(t, 1, len(keyList), "key list length")
	assert.Equal(t, uint64(0), keyList[0].Id, "key list id")

	// the chains themselves were untouched
	assert.Equal(t, uint64(9), l.TemperatureCount(), "chain count")
	stats, err := l.TemperatureStats()
	assert.Nil(t, err, "stats error")
	assert.Equal(t, uint64(3), stats.Flagged, "stats flagged")
}
