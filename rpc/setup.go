// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/water4699/frost-key-chain/counter"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/rpc/certificate"
	"github.com/water4699/frost-key-chain/rpc/handler"
	"github.com/water4699/frost-key-chain/rpc/listeners"
	"github.com/water4699/frost-key-chain/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// connection count for RPC
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	handler handler.Handler // kept for allow list reload

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start up the tls client RPC server and the https gateway
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	// servers
	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the https gateway with the same handler set as the tls server
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(
		log,
		server.Create(log, version, &connectionCountRPC),
		ledger.Get(),
		time.Now(),
		version,
		configuration.MaximumConnections,
	)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfiguration, hdlr)
	if nil != err {
		return err
	}
	err = httpsListener.Serve()
	if nil != err {
		return err
	}

	globalData.handler = hdlr

	return nil
}

// UpdateAllow - re-apply the https client allow lists
//
// called by the configuration watcher when the file changes so access
// control follows the file without a restart
func UpdateAllow(allow map[string][]string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised || nil == globalData.handler {
		return fault.NotInitialised
	}

	local, err := listeners.ParseAllow(allow)
	if nil != err {
		return err
	}

	globalData.handler.SetAllow(local)
	globalData.log.Info("https allow lists reloaded")

	return nil
}
