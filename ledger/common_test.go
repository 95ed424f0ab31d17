// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// test database and log file names
const (
	databaseFileName = "ledger-test"
	logDirectory     = "testing"
)

// deterministic signing keys, one per port recorder plus a stranger
// that never appends anything
const (
	shanghaiKeyHex   = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	singaporeKeyHex  = "8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a"
	losAngelesKeyHex = "4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d"
	strangerKeyHex   = "6cbed15c793ce57650b9877cf6fa156fbef513c4e6134f022a85b1ffdd59b2a1"
)

// remove all files created by a test
func removeTestFiles() {
	os.RemoveAll(logDirectory)
	os.RemoveAll(databaseFileName + "-ledger.leveldb")
	os.RemoveAll(databaseFileName + "-index.leveldb")
}

// start logging, storage, the vault and the ledger
//
// now is the ledger clock, nil selects the wall clock
func setup(t *testing.T, now func() uint64) {
	removeTestFiles()
	_ = os.Mkdir(logDirectory, 0o700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	mustReindex, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if mustReindex {
		// fresh databases have nothing to rebuild
		err = storage.ReindexDone()
		if nil != err {
			t.Fatalf("reindex done error: %s", err)
		}
	}

	svc := vault.NewLocalService(storage.Pool.Ciphertexts, storage.Pool.Grants)

	err = ledger.Initialise(handles(), svc, now)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

func handles() ledger.Handles {
	return ledger.Handles{
		Temperatures:         storage.Pool.Temperatures,
		KeyEntries:           storage.Pool.KeyEntries,
		TemperatureNextCount: storage.Pool.TemperatureNextCount,
		TemperatureOwnerList: storage.Pool.TemperatureOwnerList,
		KeyNextCount:         storage.Pool.KeyNextCount,
		KeyOwnerList:         storage.Pool.KeyOwnerList,
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = ledger.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeTestFiles()
}

// derive the account of a signing key
func makeAccount(t *testing.T, keyHex string) *account.Account {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("create private key error: %s", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	acc, err := account.AccountFromBytes(address.Bytes())
	if nil != err {
		t.Fatalf("account from bytes error: %s", err)
	}
	return acc
}

// sign a digest the way a wallet does, prefix then sign the prefixed hash
func signDigest(t *testing.T, keyHex string, digest []byte) account.Signature {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("create private key error: %s", err)
	}
	prefixed := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), digest)
	signature, err := crypto.Sign(prefixed, privateKey)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return signature
}

// build a signed temperature checkpoint
func makeTemperature(t *testing.T, keyHex string, location string, cargo string, flagged bool) *ledgerrecord.TemperatureLog {
	r := &ledgerrecord.TemperatureLog{
		Location: location,
		Cargo:    cargo,
		Flagged:  flagged,
		Recorder: makeAccount(t, keyHex),
	}
	digest, err := r.Pack(r.Recorder)
	if fault.InvalidSignatureLength != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
	r.Signature = signDigest(t, keyHex, digest)
	return r
}

// build a signed key entry
func makeKeyEntry(t *testing.T, keyHex string, name string) *ledgerrecord.KeyEntry {
	r := &ledgerrecord.KeyEntry{
		Name:     name,
		Recorder: makeAccount(t, keyHex),
	}
	digest, err := r.Pack(r.Recorder)
	if fault.InvalidSignatureLength != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
	r.Signature = signDigest(t, keyHex, digest)
	return r
}

// build a signed key update
func makeKeyUpdate(t *testing.T, keyHex string, entryId uint64) *ledgerrecord.KeyUpdate {
	r := &ledgerrecord.KeyUpdate{
		EntryId:  entryId,
		Recorder: makeAccount(t, keyHex),
	}
	digest, err := r.Pack(r.Recorder)
	if fault.InvalidSignatureLength != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
	r.Signature = signDigest(t, keyHex, digest)
	return r
}

// a proof with the right framing
func makeProof(fill byte) []byte {
	proof := make([]byte, 65)
	proof[0] = 0x01
	for i := 1; i < len(proof); i += 1 {
		proof[i] = fill
	}
	return proof
}

func makeExternal(fill byte) vault.ExternalHandle {
	external, _ := vault.ExternalHandleFromBytes(bytes.Repeat([]byte{fill}, vault.ExternalHandleSize))
	return external
}

// the handle the vault will derive for a fill byte
func expectedHandle(fill byte) vault.Handle {
	external := makeExternal(fill)
	handle, _ := vault.HandleFromBytes(crypto.Keccak256(external.Bytes(), makeProof(fill)))
	return handle
}

// append one temperature checkpoint, failing the test on error
func mustRecord(t *testing.T, l ledger.Ledger, log *ledgerrecord.TemperatureLog, fill byte) uint64 {
	id, err := l.RecordTemperature(log, makeExternal(fill), makeProof(fill))
	if nil != err {
		t.Fatalf("record temperature error: %s", err)
	}
	return id
}

// append one key entry, failing the test on error
func mustStore(t *testing.T, l ledger.Ledger, entry *ledgerrecord.KeyEntry, fill byte) uint64 {
	id, err := l.StoreKey(entry, makeExternal(fill), makeProof(fill))
	if nil != err {
		t.Fatalf("store key error: %s", err)
	}
	return id
}
