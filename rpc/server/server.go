// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/water4699/frost-key-chain/counter"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/mode"
	"github.com/water4699/frost-key-chain/rpc/frost"
	"github.com/water4699/frost-key-chain/rpc/keychain"
	"github.com/water4699/frost-key-chain/rpc/node"
	"github.com/water4699/frost-key-chain/rpc/recorder"
	"github.com/water4699/frost-key-chain/rpc/temperature"
)

func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	l := ledger.Get()

	server := rpc.NewServer()

	_ = server.Register(temperature.New(log, mode.Is, l))
	_ = server.Register(keychain.New(log, mode.Is, l))
	_ = server.Register(recorder.New(log, l))
	_ = server.Register(frost.New(log, l))
	_ = server.Register(node.New(log, l, start, version, rpcCount))

	return server
}
