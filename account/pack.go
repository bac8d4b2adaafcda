// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/util"
)

// Append - length prefixed account bytes for packed records
func Append(buffer []byte, account *Account) []byte {
	return util.AppendBytes(buffer, account.Bytes())
}

// Split - read a length prefixed account from the start of a packed
// record, returning the number of bytes consumed
func Split(buffer []byte) (*Account, int, error) {
	data, n := util.SplitBytes(buffer)
	if 0 == n {
		return nil, 0, fault.ErrTruncatedRecord
	}
	account, err := FromBytes(data)
	if nil != err {
		return nil, 0, err
	}
	return account, n, nil
}
