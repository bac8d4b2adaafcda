// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

// Access - single writer batch access to the database
//
// Begin blocks until any open batch is committed or aborted, so at
// most one transaction mutates the database at a time
type Access interface {
	Abort()
	Begin()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
}

type AccessData struct {
	sync.Mutex
	writer sync.Mutex
	inUse  bool
	db     *leveldb.DB
	batch  *leveldb.Batch
	cache  Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *AccessData) Begin() {
	d.writer.Lock()

	d.Lock()
	d.inUse = true
	d.Unlock()
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically and release the writer
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.release()
	return err
}

// Get - staged value if present, otherwise the committed one
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard everything staged and release the writer
func (d *AccessData) Abort() {
	d.release()
}

func (d *AccessData) release() {
	d.Lock()
	wasInUse := d.inUse
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	d.Unlock()

	if wasInUse {
		d.writer.Unlock()
	}
}
