// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/water4699/frost-key-chain/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConnectionOffset    = fault.InvalidError("connection offset is out of range")
	ErrKeyLength           = fault.InvalidError("key length is invalid")
	ErrNilKeyPair          = fault.ProcessError("internal error: nil key pair")
	ErrRequiredCargo       = fault.InvalidError("cargo is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredId          = fault.InvalidError("record id is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredKey         = fault.InvalidError("private key is required")
	ErrRequiredKeyName     = fault.InvalidError("key name is required")
	ErrRequiredLocation    = fault.InvalidError("location is required")
	ErrRequiredPayload     = fault.InvalidError("payload handle is required")
	ErrRequiredProof       = fault.InvalidError("proof is required")
	ErrRequiredRecorder    = fault.InvalidError("recorder is required")
)
