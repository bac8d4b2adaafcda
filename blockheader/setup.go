// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
	"github.com/bitmark-inc/productd/util"
)

// GenesisBlockNumber - height of a freshly created database
//
// never zero, so a recorded block number of zero always means "unset"
const GenesisBlockNumber = 1

var heightKey = []byte("height")

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height    uint64 // this is the current block Height
	timestamp time.Time

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - load the current block height
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	if nil == storage.Pool.BlockHeight {
		return fault.ErrDatabaseIsNotSet
	}

	height, found := storage.Pool.BlockHeight.GetN(heightKey)
	if !found {
		height = GenesisBlockNumber
		storage.Pool.BlockHeight.PutN(heightKey, height)
	}
	globalData.height = height
	globalData.timestamp = time.Time{}
	if n, ok := storage.Pool.Blocks.GetN(util.ToUint64(height)); ok {
		globalData.timestamp = time.Unix(0, int64(n))
	}

	log.Infof("block height: %d", globalData.height)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}

// Get - current height and the time that block was produced
func Get() (uint64, time.Time) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height, globalData.timestamp
}

// Advance - move to the next block
//
// runs in its own storage transaction so it is ordered with respect to
// ledger operations: an operation sees a single height for its whole
// duration
func Advance(timestamp time.Time) (uint64, error) {
	if !isInitialised() {
		return 0, fault.ErrNotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	globalData.Lock()
	defer globalData.Unlock()

	height := globalData.height + 1
	trx.PutN(storage.Pool.BlockHeight, heightKey, height)
	trx.PutN(storage.Pool.Blocks, util.ToUint64(height), uint64(timestamp.UnixNano()))

	err = trx.Commit()
	if nil != err {
		globalData.log.Errorf("advance to: %d  error: %s", height, err)
		return 0, err
	}

	globalData.height = height
	globalData.timestamp = timestamp
	globalData.log.Debugf("block: %d", height)

	return height, nil
}

// Timestamp - time a block was produced
func Timestamp(height uint64) (time.Time, bool) {
	n, found := storage.Pool.Blocks.GetN(util.ToUint64(height))
	if !found {
		return time.Time{}, false
	}
	return time.Unix(0, int64(n)), true
}

func isInitialised() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised
}
