// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. product      = varint length ++ product name bytes
// 4. account      = key variant byte ++ 32 byte ed25519 public key
// 5. N            = big endian uint64 (8 bytes)
// 6. sequence     = successive event number as N, starting at 1
// 7. id           = instruction digest as 32 byte SHA3-256(packed instruction)
//
// Products:
//
//	P ++ product ++ field      - product state, field is a single byte
//	                             'O' owner account, 'S' total supply N, 'V' pool N,
//	                             'R' proof of production release, 'n' next version,
//	                             'p' previous version
//	B ++ product ++ account    - share balance N (absent when zero)
//
// Events:
//
//	E ++ product ++ sequence   - packed event record
//	                             data: block N ++ packed event
//	X ++ product ++ kind ++ account ++ sequence
//	                           - index of events by their indexed account
//	                             data: empty
//	S ++ product               - last event sequence N
//
// Upgrade timer:
//
//	U ++ product ++ field      - 'B' upgrade block N, 'G' grace period N, 'C' config
//
// Blocks:
//
//	H ++ "height"              - current block number N
//	K ++ block number N        - block timestamp as unix nanoseconds N
//
// RPC:
//
//	A ++ id                    - applied instruction, data: block number N
//
// External accounts:
//
//	W ++ account               - wallet balance N
//	R ++ account               - account rejects incoming funds, data: 0x01
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
