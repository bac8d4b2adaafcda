// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
)

// Record - accept a packed instruction exactly once
//
// the id is stored with the current block before the instruction is
// executed, so a replay fails even if the first execution was rejected
func Record(packed Packed) error {
	id := packed.ID()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if trx.Has(storage.Pool.Applied, id[:]) {
		trx.Abort()
		return fault.ErrTransactionAlreadyExists
	}
	trx.PutN(storage.Pool.Applied, id[:], blockheader.Height())

	return trx.Commit()
}

// AppliedIn - block in which an instruction was recorded
func AppliedIn(packed Packed) (uint64, bool) {
	id := packed.ID()
	return storage.Pool.Applied.GetN(id[:])
}
