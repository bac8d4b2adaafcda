// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/fault"
)

// Snapshot - committed state frozen at one point in the commit order
//
// several reads through one snapshot never see parts of different
// commits; does not wait for the writer
type Snapshot struct {
	snap *leveldb.Snapshot
}

// NewSnapshot - freeze the current committed state
//
// the caller must Release it
func NewSnapshot() (*Snapshot, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	snap, err := poolData.db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{snap: snap}, nil
}

// Get - value of a key as of the snapshot, nil if absent
func (s *Snapshot) Get(handle *PoolHandle, key []byte) []byte {
	value, err := s.snap.Get(handle.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("snapshot.Get", err)
	return value
}

// GetN - big endian uint64 as of the snapshot
//
// second parameter is false if record was not found
func (s *Snapshot) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := s.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("snapshot.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - whether a key existed at the snapshot
func (s *Snapshot) Has(handle *PoolHandle, key []byte) bool {
	found, err := s.snap.Has(handle.prefixKey(key), nil)
	logger.PanicIfError("snapshot.Has", err)
	return found
}

// Release - free the snapshot
func (s *Snapshot) Release() {
	s.snap.Release()
}
