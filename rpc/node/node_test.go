// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/chain"
	"github.com/bitmark-inc/productd/counter"
	"github.com/bitmark-inc/productd/mode"
	"github.com/bitmark-inc/productd/rpc/fixtures"
	"github.com/bitmark-inc/productd/rpc/mocks"
	"github.com/bitmark-inc/productd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mode.Initialise(chain.Testing)
	defer mode.Finalise()

	c := mocks.NewMockCatalogue(ctl)

	now := time.Now()
	ctr := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		&ctr,
		c,
	)

	c.EXPECT().Names().Return([]string{"alpha", "beta"}).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.ReadOnly.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(0), reply.Block.Height, "wrong block height")
	assert.Equal(t, ctr.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, []string{"alpha", "beta"}, reply.Products, "wrong products")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
}
