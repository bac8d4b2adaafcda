// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/storage"
)

func TestPoolPutGet(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.Put([]byte("key"), []byte("value"))

	assert.Equal(t, []byte("value"), p.Get([]byte("key")), "wrong Get")
	assert.True(t, p.Has([]byte("key")), "wrong Has")
	assert.Nil(t, p.Get([]byte("missing")), "missing key found")

	p.Delete([]byte("key"))
	assert.False(t, p.Has([]byte("key")), "key not deleted")

	_, found := storage.Pool.Balances.GetN([]byte("key"))
	assert.False(t, found, "pools share keys")
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.PutN([]byte("gone"), 1)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong NewDBTransaction")

	trx.PutN(p, []byte("n"), 7)
	trx.Delete(p, []byte("gone"))

	n, found := trx.GetN(p, []byte("n"))
	assert.True(t, found, "staged value not visible to transaction")
	assert.Equal(t, uint64(7), n, "wrong staged value")
	assert.False(t, trx.Has(p, []byte("gone")), "staged delete not visible")
	assert.Nil(t, trx.Get(p, []byte("gone")), "deleted value readable")

	_, found = p.GetN([]byte("n"))
	assert.False(t, found, "uncommitted value visible to pool")
	assert.True(t, p.Has([]byte("gone")), "uncommitted delete visible to pool")

	err = trx.Commit()
	assert.Nil(t, err, "wrong Commit")
	assert.False(t, trx.InUse(), "transaction still in use")

	n, found = p.GetN([]byte("n"))
	assert.True(t, found, "committed value missing")
	assert.Equal(t, uint64(7), n, "wrong committed value")
	assert.False(t, p.Has([]byte("gone")), "committed delete missing")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.PutN([]byte("n"), 1)

	trx, _ := storage.NewDBTransaction()
	trx.PutN(p, []byte("n"), 2)
	trx.Put(p, []byte("new"), []byte{1})
	trx.Abort()

	n, _ := p.GetN([]byte("n"))
	assert.Equal(t, uint64(1), n, "aborted value written")
	assert.False(t, p.Has([]byte("new")), "aborted key written")

	trx, _ = storage.NewDBTransaction()
	assert.Nil(t, trx.Get(p, []byte("new")), "aborted key still staged")
	trx.Abort()
}

func TestTransactionSerialises(t *testing.T) {
	setup(t)
	defer teardown()

	first, _ := storage.NewDBTransaction()

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		second, _ := storage.NewDBTransaction()
		second.PutN(storage.Pool.TestData, []byte("second"), 2)
		_ = second.Commit()
		close(done)
	}()

	<-started
	select {
	case <-done:
		t.Fatal("second transaction began while first was open")
	case <-time.After(50 * time.Millisecond):
	}

	first.PutN(storage.Pool.TestData, []byte("first"), 1)
	_ = first.Commit()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second transaction never began")
	}

	assert.True(t, storage.Pool.TestData.Has([]byte("first")), "first missing")
	assert.True(t, storage.Pool.TestData.Has([]byte("second")), "second missing")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	_, found := p.LastElement([]byte("a"))
	assert.False(t, found, "element in empty pool")

	p.Put([]byte("a1"), []byte("one"))
	p.Put([]byte("a3"), []byte("three"))
	p.Put([]byte("b9"), []byte("other"))

	e, found := p.LastElement([]byte("a"))
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("a3"), e.Key, "wrong key")
	assert.Equal(t, []byte("three"), e.Value, "wrong value")
}
