// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/keypair"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/rpc/temperature"
	"github.com/water4699/frost-key-chain/vault"
)

var (
	ErrMakeRecordFail = fault.ProcessError("make record failed")
)

// RecordData - data for a temperature checkpoint request
type RecordData struct {
	Location string
	Cargo    string
	Flagged  bool
	Payload  vault.ExternalHandle
	Proof    vault.Proof
	Owner    *keypair.KeyPair
}

// Record - append one signed temperature checkpoint
func (client *Client) Record(recordConfig *RecordData) (*temperature.RecordReply, error) {

	r, err := makeTemperatureLog(recordConfig)
	if nil != err {
		return nil, err
	}
	if nil == r {
		return nil, ErrMakeRecordFail
	}

	recordArgs := temperature.RecordArguments{
		Location:  r.Location,
		Cargo:     r.Cargo,
		Flag:      r.Flagged,
		Payload:   recordConfig.Payload,
		Proof:     recordConfig.Proof,
		Recorder:  r.Recorder,
		Signature: r.Signature,
	}

	client.printJson("Record Request", recordArgs)

	reply := &temperature.RecordReply{}
	err = client.client.Call("Temperature.Record", recordArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Record Reply", reply)

	return reply, nil
}

func makeTemperatureLog(recordConfig *RecordData) (*ledgerrecord.TemperatureLog, error) {

	r := ledgerrecord.TemperatureLog{
		Location:  recordConfig.Location,
		Cargo:     recordConfig.Cargo,
		Flagged:   recordConfig.Flagged,
		Recorder:  recordConfig.Owner.Account,
		Signature: nil,
	}

	// pack without signature, the digest comes back
	digest, err := r.Pack(recordConfig.Owner.Account)
	if nil == err {
		return nil, ErrMakeRecordFail
	} else if fault.InvalidSignatureLength != err {
		return nil, err
	}

	// attach signature
	signature, err := recordConfig.Owner.Sign(digest)
	if nil != err {
		return nil, err
	}
	r.Signature = signature

	// check that signature is correct by packing again
	_, err = r.Pack(recordConfig.Owner.Account)
	if nil != err {
		return nil, err
	}
	return &r, nil
}
