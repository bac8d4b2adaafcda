// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - staged writes of the open transaction
type Cache interface {
	Get(string) ([]byte, int, bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries live exactly as long as the transaction, so never expire
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - staged value, operation and whether the key was staged at all
//
// a deleted key is found with op dbDelete and a nil value
func (c *dbCache) Get(key string) ([]byte, int, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, dbDelete, true
	}
	return data.value, dbPut, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
