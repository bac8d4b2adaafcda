// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/productd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewPrefixCursor - initialise a cursor over the keys that start with keyPrefix
func (p *PoolHandle) NewPrefixCursor(keyPrefix []byte) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *util.BytesPrefix(p.prefixKey(keyPrefix)),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	start := cursor.pool.prefixKey(key)
	if nil == cursor.maxRange.Limit || string(start) < string(cursor.maxRange.Limit) {
		cursor.maxRange.Start = start
	}
	return cursor
}

// Fetch - return some elements starting from the cursor position
//
// the cursor advances past the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if cursor == nil {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.db {
		return nil, fault.ErrDatabaseIsNotSet
	}

	iter := cursor.pool.db.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		results = append(results, Element{
			Key:   append([]byte{}, key[1:]...), // strip the prefix
			Value: append([]byte{}, value...),
		})
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n := len(results); n > 0 {
		// smallest key greater than the last one returned
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if cursor == nil {
		return fault.ErrInvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.db {
		return fault.ErrDatabaseIsNotSet
	}

	iter := cursor.pool.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		dataKey := append([]byte{}, iter.Key()[1:]...)
		dataValue := append([]byte{}, iter.Value()...)

		err = f(dataKey, dataValue)
		if err != nil {
			break iterating
		}
	}
	iter.Release()
	if err == nil {
		err = iter.Error()
	}
	return err
}
