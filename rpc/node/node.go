// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/counter"
	"github.com/bitmark-inc/productd/mode"
	"github.com/bitmark-inc/productd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Catalogue - names of the products served by this node
type Catalogue interface {
	Names() []string
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Catalogue Catalogue
	counter   *counter.Counter
}

// New - node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, catalogue Catalogue) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Catalogue: catalogue,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string    `json:"chain"`
	Mode     string    `json:"mode"`
	Block    BlockInfo `json:"block"`
	RPCs     uint64    `json:"rpcs"`
	Products []string  `json:"products"`
	Version  string    `json:"version"`
	Uptime   string    `json:"uptime"`
}

// BlockInfo - the current block of the node
type BlockInfo struct {
	Height    uint64    `json:"height"`
	Timestamp time.Time `json:"timestamp"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Block.Height, reply.Block.Timestamp = blockheader.Get()
	reply.RPCs = node.counter.Uint64()
	reply.Products = node.Catalogue.Names()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
