// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/water4699/frost-key-chain/counter"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/mode"
	"github.com/water4699/frost-key-chain/publish"
	"github.com/water4699/frost-key-chain/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  ledger.Ledger
	counter *counter.Counter
}

// New - create a node RPC handler
func New(log *logger.L, l ledger.Ledger, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  l,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network   string     `json:"network"`
	Mode      string     `json:"mode"`
	Records   RecordInfo `json:"records"`
	RPCs      uint64     `json:"rpcs"`
	Version   string     `json:"version"`
	Uptime    string     `json:"uptime"`
	PublicKey string     `json:"publicKey"`
}

// RecordInfo - the chain lengths held by the node
type RecordInfo struct {
	Temperatures uint64 `json:"temperatures"`
	Keys         uint64 `json:"keys"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.Records = RecordInfo{
		Temperatures: node.Ledger.TemperatureCount(),
		Keys:         node.Ledger.KeyCount(),
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.PublicKey = hex.EncodeToString(publish.PublicKey())
	return nil
}
