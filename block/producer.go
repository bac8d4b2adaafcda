// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/background"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/messagebus"
)

// DefaultInterval - time between blocks when not configured
const DefaultInterval = 15 * time.Second

// Producer - background process that advances the block height
type Producer struct {
	log      *logger.L
	clock    clockwork.Clock
	interval time.Duration
	produced func(height uint64)
}

// NewProducer - create a block producer driven by clock
//
// produced, if not nil, is called after each new block
func NewProducer(clock clockwork.Clock, interval time.Duration, produced func(height uint64)) *Producer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Producer{
		log:      logger.New("block"),
		clock:    clock,
		interval: interval,
		produced: produced,
	}
}

// Run - produce blocks until shutdown
func (p *Producer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log

	log.Infof("starting… interval: %s", p.interval)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case now := <-ticker.Chan():
			height, err := blockheader.Advance(now)
			if nil != err {
				log.Errorf("advance error: %s", err)
				continue loop
			}
			log.Debugf("produced block: %d", height)
			messagebus.Bus.Broadcast.Send("block", height)
			if nil != p.produced {
				p.produced(height)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// the producer runs as a background process
var _ background.Process = (*Producer)(nil)
