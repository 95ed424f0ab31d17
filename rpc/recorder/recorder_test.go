// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recorder_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/fixtures"
	"github.com/water4699/frost-key-chain/rpc/mocks"
	"github.com/water4699/frost-key-chain/rpc/recorder"
)

func TestRecorderTemperatures(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acc := fixtures.Account(fixtures.RecorderKeyHex)

	page := []ledger.ListEntry{
		{N: 0, Id: 4},
		{N: 1, Id: 9},
		{N: 2, Id: 11},
	}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().ListTemperaturesFor(acc, uint64(0), 10).Return(page, nil).Times(1)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	arguments := recorder.ListArguments{
		Recorder: acc,
		Start:    0,
		Count:    10,
	}

	var reply recorder.ListReply
	err := r.Temperatures(&arguments, &reply)
	assert.Nil(t, err, "wrong Temperatures")
	assert.Equal(t, page, reply.Data, "wrong data")
	assert.Equal(t, uint64(3), reply.Next, "wrong next")
}

func TestRecorderTemperaturesWhenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acc := fixtures.Account(fixtures.StrangerKeyHex)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().ListTemperaturesFor(acc, uint64(0), 10).Return([]ledger.ListEntry{}, nil).Times(1)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	arguments := recorder.ListArguments{
		Recorder: acc,
		Start:    0,
		Count:    10,
	}

	var reply recorder.ListReply
	err := r.Temperatures(&arguments, &reply)
	assert.Nil(t, err, "wrong Temperatures")
	assert.Equal(t, 0, len(reply.Data), "wrong data count")
	assert.Equal(t, uint64(0), reply.Next, "wrong next")
}

func TestRecorderTemperaturesWhenCountTooBig(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acc := fixtures.Account(fixtures.RecorderKeyHex)

	l := mocks.NewMockLedger(ctl)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	arguments := recorder.ListArguments{
		Recorder: acc,
		Start:    0,
		Count:    recorder.MaximumListCount + 1,
	}

	var reply recorder.ListReply
	err := r.Temperatures(&arguments, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong Temperatures error")
}

func TestRecorderKeys(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acc := fixtures.Account(fixtures.RecorderKeyHex)

	page := []ledger.ListEntry{
		{N: 5, Id: 2},
	}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().ListKeysFor(acc, uint64(5), 1).Return(page, nil).Times(1)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	arguments := recorder.ListArguments{
		Recorder: acc,
		Start:    5,
		Count:    1,
	}

	var reply recorder.ListReply
	err := r.Keys(&arguments, &reply)
	assert.Nil(t, err, "wrong Keys")
	assert.Equal(t, page, reply.Data, "wrong data")
	assert.Equal(t, uint64(6), reply.Next, "wrong next")
}

func TestRecorderCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	acc := fixtures.Account(fixtures.RecorderKeyHex)

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().CountTemperaturesFor(acc).Return(uint64(12)).Times(1)
	l.EXPECT().CountKeysFor(acc).Return(uint64(2)).Times(1)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	arguments := recorder.CountArguments{Recorder: acc}

	var reply recorder.CountReply
	err := r.Count(&arguments, &reply)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, uint64(12), reply.Temperatures, "wrong temperature count")
	assert.Equal(t, uint64(2), reply.Keys, "wrong key count")
}

func TestRecorderCountWhenMissingRecorder(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)

	r := recorder.New(logger.New(fixtures.LogCategory), l)

	var reply recorder.CountReply
	err := r.Count(&recorder.CountArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong Count error")
}
