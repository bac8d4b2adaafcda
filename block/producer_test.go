// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/background"
	"github.com/bitmark-inc/productd/block"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/storage"
)

const testingDirName = "testing"

func setup(t *testing.T) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(testingDirName, "test"), storage.ReadWrite)
	assert.Nil(t, err, "wrong storage Initialise")
	err = blockheader.Initialise()
	assert.Nil(t, err, "wrong blockheader Initialise")
}

func teardown() {
	_ = blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestProducerAdvancesOnTick(t *testing.T) {
	setup(t)
	defer teardown()

	clock := clockwork.NewFakeClock()
	produced := make(chan uint64, 10)
	p := block.NewProducer(clock, 10*time.Second, func(height uint64) {
		produced <- height
	})

	h := background.Start(background.Processes{p}, nil)
	defer h.Stop()

	clock.BlockUntil(1)
	assert.Equal(t, uint64(blockheader.GenesisBlockNumber), blockheader.Height(), "block produced before tick")

	for expected := uint64(2); expected <= 3; expected += 1 {
		clock.Advance(10 * time.Second)
		select {
		case height := <-produced:
			assert.Equal(t, expected, height, "wrong produced height")
		case <-time.After(2 * time.Second):
			t.Fatalf("block %d not produced", expected)
		}
	}
	assert.Equal(t, uint64(3), blockheader.Height(), "wrong height")
}

func TestDefaultInterval(t *testing.T) {
	setup(t)
	defer teardown()

	clock := clockwork.NewFakeClock()
	produced := make(chan uint64, 1)
	p := block.NewProducer(clock, 0, func(height uint64) {
		produced <- height
	})

	h := background.Start(background.Processes{p}, nil)
	defer h.Stop()

	clock.BlockUntil(1)
	clock.Advance(block.DefaultInterval - time.Second)
	select {
	case <-produced:
		t.Fatal("block produced before the default interval")
	case <-time.After(50 * time.Millisecond):
	}
}
