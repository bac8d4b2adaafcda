// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for product-cli and other clients
//
// services: Product (ledger operations and queries), Upgrade (timer),
// Events (log listing), Wallet (external accounts) and Node (status);
// every mutation arrives as a signed instruction
package rpc
