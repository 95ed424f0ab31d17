// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

const (
	databaseFileName = "vault-test"
	logDirectory     = "testing"

	recorderKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	strangerKeyHex = "8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a"
)

func TestMain(m *testing.M) {
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

	rc := m.Run()

	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

func makeAccount(t *testing.T, keyHex string) *account.Account {
	privateKey, err := crypto.HexToECDSA(keyHex)
	if nil != err {
		t.Fatalf("cannot decode test key: %s", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	recorder, err := account.AccountFromBytes(address[:])
	if nil != err {
		t.Fatalf("cannot make account: %s", err)
	}
	return recorder
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

func removeTestFiles() {
	os.RemoveAll(databaseFileName + "-ledger.leveldb")
	os.RemoveAll(databaseFileName + "-index.leveldb")
}

func setupStorage(t *testing.T) {
	removeTestFiles()
	mustReindex, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if mustReindex {
		err = storage.ReindexDone()
		if nil != err {
			t.Fatalf("reindex done error: %s", err)
		}
	}
}

func teardownStorage(t *testing.T) {
	storage.Finalise()
	removeTestFiles()
}

func TestExternalHandleFromBytes(t *testing.T) {
	b := bytes.Repeat([]byte{0x2a}, vault.ExternalHandleSize)
	external, err := vault.ExternalHandleFromBytes(b)
	assert.Equal(t, nil, err, "valid handle rejected")
	assert.Equal(t, b, external.Bytes(), "handle bytes changed")

	_, err = vault.ExternalHandleFromBytes(b[:31])
	assert.Equal(t, fault.InvalidCiphertextHandle, err, "short handle accepted")

	_, err = vault.ExternalHandleFromBytes(append(b, 0x00))
	assert.Equal(t, fault.InvalidCiphertextHandle, err, "long handle accepted")
}

func TestExternalHandleUnmarshalText(t *testing.T) {
	external := makeExternal(0x5b)

	text, err := external.MarshalText()
	assert.Equal(t, nil, err, "marshal failed")

	decoded := vault.ExternalHandle{}
	err = decoded.UnmarshalText(text)
	assert.Equal(t, nil, err, "unmarshal failed")
	assert.Equal(t, external, decoded, "round trip changed the handle")

	prefixed := append([]byte("0x"), text...)
	decoded = vault.ExternalHandle{}
	err = decoded.UnmarshalText(prefixed)
	assert.Equal(t, nil, err, "0x prefixed unmarshal failed")
	assert.Equal(t, external, decoded, "prefixed round trip changed the handle")

	err = decoded.UnmarshalText(text[:10])
	assert.Equal(t, fault.InvalidCiphertextHandle, err, "short hex accepted")

	bad := bytes.Repeat([]byte{'z'}, 2*vault.ExternalHandleSize)
	err = decoded.UnmarshalText(bad)
	assert.Equal(t, fault.InvalidCiphertextHandle, err, "non-hex accepted")
}

func TestIngestValidation(t *testing.T) {
	s := vault.NewMemoryService()
	external := makeExternal(0x11)

	badVersion := makeProof(0xee)
	badVersion[0] = 0x02

	testData := []struct {
		proof []byte
	}{
		{[]byte{}},             // empty
		{[]byte{0x01}},         // too short
		{makeProof(0xee)[:64]}, // one byte below the minimum
		{make([]byte, 8193)},   // too long
		{badVersion},           // wrong version
	}

	for i, item := range testData {
		_, err := s.Ingest(nil, external, item.proof, 1)
		if fault.InvalidCiphertextProof != err {
			t.Errorf("%d: got: %v  expected: %v", i, err, fault.InvalidCiphertextProof)
		}
	}

	_, err := s.Ingest(nil, external, makeProof(0xee), 1)
	assert.Equal(t, nil, err, "valid proof rejected")
}

func TestIngestDeterministicHandle(t *testing.T) {
	one := vault.NewMemoryService()
	two := vault.NewMemoryService()

	external := makeExternal(0x42)
	proof := makeProof(0x37)

	h1, err := one.Ingest(nil, external, proof, 1)
	assert.Equal(t, nil, err, "ingest failed")
	h2, err := two.Ingest(nil, external, proof, 99)
	assert.Equal(t, nil, err, "ingest failed")
	assert.Equal(t, h1, h2, "same submission derived different handles")

	h3, err := one.Ingest(nil, external, makeProof(0x38), 1)
	assert.Equal(t, nil, err, "ingest failed")
	assert.NotEqual(t, h1, h3, "different proof derived the same handle")

	h4, err := one.Ingest(nil, makeExternal(0x43), proof, 1)
	assert.Equal(t, nil, err, "ingest failed")
	assert.NotEqual(t, h1, h4, "different external handle derived the same handle")
}

func TestMemoryGrants(t *testing.T) {
	s := vault.NewMemoryService()
	recorder := makeAccount(t, recorderKeyHex)
	stranger := makeAccount(t, strangerKeyHex)

	handle, err := s.Ingest(nil, makeExternal(0x77), makeProof(0x01), 1500000000)
	assert.Equal(t, nil, err, "ingest failed")

	assert.Equal(t, true, s.Registered(handle), "ingested payload not registered")
	assert.Equal(t, false, s.Registered(vault.Handle{}), "empty handle registered")

	assert.Equal(t, false, s.CanAccess(handle, recorder), "access before grant")

	s.Grant(nil, handle, recorder, 1500000000)
	assert.Equal(t, true, s.CanAccess(handle, recorder), "grant has no effect")
	assert.Equal(t, false, s.CanAccess(handle, stranger), "grant leaked to another recorder")
	assert.Equal(t, false, s.CanAccess(handle, nil), "nil recorder has access")

	s.GrantSelf(nil, handle, 1500000000)
	assert.Equal(t, true, s.CanAccess(handle, recorder), "recorder grant lost")
}

func TestLocalServiceCommit(t *testing.T) {
	setupStorage(t)
	defer teardownStorage(t)

	s := vault.NewLocalService(storage.Pool.Ciphertexts, storage.Pool.Grants)
	recorder := makeAccount(t, recorderKeyHex)

	trx, err := storage.NewDBTransaction()
	assert.Equal(t, nil, err, "transaction begin failed")

	handle, err := s.Ingest(trx, makeExternal(0x10), makeProof(0x20), 1500000000)
	assert.Equal(t, nil, err, "ingest failed")
	s.GrantSelf(trx, handle, 1500000000)
	s.Grant(trx, handle, recorder, 1500000000)

	// staged writes read back before commit
	assert.Equal(t, true, s.Registered(handle), "staged registration not visible")
	assert.Equal(t, true, s.CanAccess(handle, recorder), "staged grant not visible")

	err = trx.Commit()
	assert.Equal(t, nil, err, "commit failed")

	assert.Equal(t, true, s.Registered(handle), "registration lost on commit")
	assert.Equal(t, true, s.CanAccess(handle, recorder), "grant lost on commit")
}

func TestLocalServiceAbort(t *testing.T) {
	setupStorage(t)
	defer teardownStorage(t)

	s := vault.NewLocalService(storage.Pool.Ciphertexts, storage.Pool.Grants)
	recorder := makeAccount(t, recorderKeyHex)

	trx, err := storage.NewDBTransaction()
	assert.Equal(t, nil, err, "transaction begin failed")

	handle, err := s.Ingest(trx, makeExternal(0x30), makeProof(0x40), 1500000000)
	assert.Equal(t, nil, err, "ingest failed")
	s.GrantSelf(trx, handle, 1500000000)
	s.Grant(trx, handle, recorder, 1500000000)

	trx.Abort()

	assert.Equal(t, false, s.Registered(handle), "aborted registration remained")
	assert.Equal(t, false, s.CanAccess(handle, recorder), "aborted grant remained")
}
