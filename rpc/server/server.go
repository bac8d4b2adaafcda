// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/counter"
	"github.com/bitmark-inc/productd/registry"
	"github.com/bitmark-inc/productd/rpc/events"
	"github.com/bitmark-inc/productd/rpc/gate"
	"github.com/bitmark-inc/productd/rpc/node"
	"github.com/bitmark-inc/productd/rpc/product"
	"github.com/bitmark-inc/productd/rpc/upgrades"
	"github.com/bitmark-inc/productd/rpc/wallets"
)

// Create - RPC server with every client service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, products *registry.Registry, accounts wallets.Accounts) *rpc.Server {

	start := time.Now().UTC()
	g := gate.New()

	server := rpc.NewServer()

	_ = server.Register(product.New(log, g, products))
	_ = server.Register(upgrades.New(log, g, products))
	_ = server.Register(events.New(log, g, products))
	_ = server.Register(wallets.New(log, g, accounts))
	_ = server.Register(node.New(log, start, version, rpcCount, products))

	return server
}
