// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// operation outcomes
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "productd_build_info",
			Help: "Build information of the product ledger node",
		},
		[]string{"version", "chain"},
	)

	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productd_operations_total",
			Help: "Total number of ledger operations by outcome",
		},
		[]string{"product", "operation", "status"},
	)

	TotalSupply = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "productd_total_supply",
			Help: "Shares in circulation",
		},
		[]string{"product"},
	)

	PoolValue = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "productd_pool_value",
			Help: "Value held in the product pool",
		},
		[]string{"product"},
	)

	BlockHeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "productd_block_height",
			Help: "Current block number",
		},
	)

	RPCConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "productd_rpc_connections",
			Help: "Open client RPC connections",
		},
	)
)

// Operation - count one ledger operation
func Operation(product string, operation string, err error) {
	status := StatusOK
	if nil != err {
		status = StatusError
	}
	OperationsTotal.WithLabelValues(product, operation, status).Inc()
}

// Product - record a product's committed supply and pool
func Product(product string, supply uint64, pool uint64) {
	TotalSupply.WithLabelValues(product).Set(float64(supply))
	PoolValue.WithLabelValues(product).Set(float64(pool))
}
