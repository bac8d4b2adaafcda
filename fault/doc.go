// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - typed error values shared by ledger, timer and rpc
//
// each error is a single package level value of a class type so callers
// compare with == and test the class with the IsErr functions
package fault
