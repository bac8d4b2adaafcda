// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/counter"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/registry"
	"github.com/bitmark-inc/productd/rpc/certificate"
	"github.com/bitmark-inc/productd/rpc/listeners"
	"github.com/bitmark-inc/productd/rpc/server"
	"github.com/bitmark-inc/productd/rpc/wallets"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// open client connections
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, version string, products *registry.Registry, accounts wallets.Accounts) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	certificatePEM, keyPEM, err := certificate.ReadFiles(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("read certificate error: %s", err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, certificatePEM, keyPEM)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, products, accounts),
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
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting client connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - open client connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
