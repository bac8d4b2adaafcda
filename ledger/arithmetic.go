// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/bits"

	"github.com/bitmark-inc/productd/fault"
)

func add(a uint64, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if 0 != carry {
		return 0, fault.ErrArithmeticOverflow
	}
	return sum, nil
}

func subtract(a uint64, b uint64) (uint64, error) {
	difference, borrow := bits.Sub64(a, b, 0)
	if 0 != borrow {
		return 0, fault.ErrArithmeticOverflow
	}
	return difference, nil
}

func multiply(a uint64, b uint64) (uint64, error) {
	high, low := bits.Mul64(a, b)
	if 0 != high {
		return 0, fault.ErrArithmeticOverflow
	}
	return low, nil
}

// floor division, the remainder is left where it was
func divide(a uint64, b uint64) (uint64, error) {
	if 0 == b {
		return 0, fault.ErrDivisionByZero
	}
	return a / b, nil
}
