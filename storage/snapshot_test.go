// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
)

func TestSnapshotIgnoresLaterCommits(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.PutN([]byte("a"), 1)
	p.PutN([]byte("b"), 1)

	snap, err := storage.NewSnapshot()
	assert.Nil(t, err, "wrong NewSnapshot")
	defer snap.Release()

	trx, _ := storage.NewDBTransaction()
	trx.PutN(p, []byte("a"), 2)
	trx.PutN(p, []byte("b"), 2)
	trx.Put(p, []byte("c"), []byte{1})
	err = trx.Commit()
	assert.Nil(t, err, "wrong Commit")

	a, _ := snap.GetN(p, []byte("a"))
	b, _ := snap.GetN(p, []byte("b"))
	assert.Equal(t, uint64(1), a, "snapshot saw later commit")
	assert.Equal(t, uint64(1), b, "snapshot saw later commit")
	assert.False(t, snap.Has(p, []byte("c")), "snapshot saw later key")
	assert.Nil(t, snap.Get(p, []byte("c")), "snapshot saw later key")

	after, err := storage.NewSnapshot()
	assert.Nil(t, err, "wrong NewSnapshot")
	defer after.Release()

	a, _ = after.GetN(p, []byte("a"))
	assert.Equal(t, uint64(2), a, "new snapshot missed commit")
	assert.True(t, after.Has(p, []byte("c")), "new snapshot missed key")
}

func TestSnapshotUncommitted(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData

	trx, _ := storage.NewDBTransaction()
	trx.PutN(p, []byte("n"), 3)

	snap, err := storage.NewSnapshot()
	assert.Nil(t, err, "snapshot waited for writer")
	_, found := snap.GetN(p, []byte("n"))
	assert.False(t, found, "staged value visible")
	snap.Release()

	trx.Abort()
}

func TestSnapshotNotSet(t *testing.T) {
	_, err := storage.NewSnapshot()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "snapshot without database")
}
