// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - staged, all or nothing update across pools
//
// reads see the transaction's own writes; nothing is visible to pool
// readers until Commit; Abort discards every staged change
type Transaction interface {
	Begin()
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() {
	t.access.Begin()
}

func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(handle.prefixKey(key), buffer)
}

func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.Delete(handle.prefixKey(key))
}

func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("trx.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("trx.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("trx.Has", err)
	return found
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}
