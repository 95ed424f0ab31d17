// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package temperature_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/mode"
	"github.com/water4699/frost-key-chain/network"
	"github.com/water4699/frost-key-chain/rpc/fixtures"
	"github.com/water4699/frost-key-chain/rpc/mocks"
	"github.com/water4699/frost-key-chain/rpc/temperature"
	"github.com/water4699/frost-key-chain/vault"
)

// build a signed checkpoint for the fixture recorder
func makeRecord(t *testing.T, location string, cargo string, flagged bool) *ledgerrecord.TemperatureLog {
	r := &ledgerrecord.TemperatureLog{
		Location: location,
		Cargo:    cargo,
		Flagged:  flagged,
		Recorder: fixtures.Account(fixtures.RecorderKeyHex),
	}
	digest, err := r.Pack(r.Recorder)
	if fault.InvalidSignatureLength != err {
		t.Fatalf("unexpected pack error: %s", err)
	}
	r.Signature = fixtures.SignDigest(fixtures.RecorderKeyHex, digest)
	return r
}

func makeExternal(fill byte) vault.ExternalHandle {
	external, _ := vault.ExternalHandleFromBytes(bytes.Repeat([]byte{fill}, vault.ExternalHandleSize))
	return external
}

func makeProof(fill byte) vault.Proof {
	proof := make([]byte, 65)
	proof[0] = 0x01
	for i := 1; i < len(proof); i += 1 {
		proof[i] = fill
	}
	return proof
}

func TestTemperatureRecord(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	record := makeRecord(t, "reefer bay 4", "frozen tuna", false)
	external := makeExternal(0x33)
	proof := makeProof(0x33)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().RecordTemperature(record, external, []byte(proof)).Return(uint64(7), nil).Times(1)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	arguments := temperature.RecordArguments{
		Location:  record.Location,
		Cargo:     record.Cargo,
		Flag:      record.Flagged,
		Payload:   external,
		Proof:     proof,
		Recorder:  record.Recorder,
		Signature: record.Signature,
	}

	var reply temperature.RecordReply
	err := tmp.Record(&arguments, &reply)
	assert.Nil(t, err, "wrong Record")
	assert.Equal(t, uint64(7), reply.Id, "wrong id")
}

func TestTemperatureRecordWhenNotNormal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	record := makeRecord(t, "reefer bay 4", "frozen tuna", false)

	l := mocks.NewMockLedger(ctl)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		l,
	)

	arguments := temperature.RecordArguments{
		Location:  record.Location,
		Cargo:     record.Cargo,
		Flag:      record.Flagged,
		Payload:   makeExternal(0x33),
		Proof:     makeProof(0x33),
		Recorder:  record.Recorder,
		Signature: record.Signature,
	}

	var reply temperature.RecordReply
	err := tmp.Record(&arguments, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong Record error")
}

func TestTemperatureRecordWhenMissingRecorder(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	arguments := temperature.RecordArguments{
		Location: "reefer bay 4",
		Cargo:    "frozen tuna",
	}

	var reply temperature.RecordReply
	err := tmp.Record(&arguments, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong Record error")
}

func TestTemperatureMetadata(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	recorder := fixtures.Account(fixtures.RecorderKeyHex)

	stored := ledger.TemperatureRecord{
		Id:        7,
		Recorder:  recorder,
		Location:  "reefer bay 4",
		Cargo:     "frozen tuna",
		Flagged:   true,
		CreatedAt: 0x5f000000,
	}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Temperature(uint64(7)).Return(&stored, nil).Times(1)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	arguments := temperature.MetadataArguments{Id: 7}

	var reply ledger.TemperatureRecord
	err := tmp.Metadata(&arguments, &reply)
	assert.Nil(t, err, "wrong Metadata")
	assert.Equal(t, stored, reply, "wrong record")
}

func TestTemperatureMetadataWhenMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Temperature(uint64(9)).Return(nil, fault.RecordNotFound).Times(1)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	arguments := temperature.MetadataArguments{Id: 9}

	var reply ledger.TemperatureRecord
	err := tmp.Metadata(&arguments, &reply)
	assert.Equal(t, fault.RecordNotFound, err, "wrong Metadata error")
}

func TestTemperaturePayload(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	handle, _ := vault.HandleFromBytes(bytes.Repeat([]byte{0x44}, vault.HandleSize))

	stored := ledger.Payload{
		Id:        7,
		Handle:    handle,
		UpdatedAt: 0x5f000000,
	}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TemperaturePayload(uint64(7)).Return(&stored, nil).Times(1)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	arguments := temperature.PayloadArguments{Id: 7}

	var reply ledger.Payload
	err := tmp.Payload(&arguments, &reply)
	assert.Nil(t, err, "wrong Payload")
	assert.Equal(t, stored, reply, "wrong payload")
}

func TestTemperatureStats(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	stored := ledger.Stats{
		Total:   12,
		Flagged: 3,
	}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TemperatureStats().Return(&stored, nil).Times(1)

	tmp := temperature.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		l,
	)

	var reply ledger.Stats
	err := tmp.Stats(&temperature.StatsArguments{}, &reply)
	assert.Nil(t, err, "wrong Stats")
	assert.Equal(t, stored, reply, "wrong stats")
}
