// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := newCache()

	_, _, found := c.Get("missing")
	assert.False(t, found, "empty cache returned a value")

	c.Set(dbPut, "key", []byte("value"))
	value, op, found := c.Get("key")
	assert.True(t, found, "staged put not found")
	assert.Equal(t, dbPut, op, "wrong op")
	assert.Equal(t, []byte("value"), value, "wrong value")

	c.Set(dbDelete, "key", nil)
	value, op, found = c.Get("key")
	assert.True(t, found, "tombstone not found")
	assert.Equal(t, dbDelete, op, "wrong op for delete")
	assert.Nil(t, value, "tombstone has a value")

	c.Clear()
	_, _, found = c.Get("key")
	assert.False(t, found, "cache not cleared")
}
