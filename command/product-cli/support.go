// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/command/product-cli/rpccalls"
	"github.com/bitmark-inc/productd/keypair"
	"github.com/bitmark-inc/productd/proof"
)

// product name from the global flag
func checkProduct(m *metadata) (string, error) {
	if "" == m.product {
		return "", fmt.Errorf("product name is required")
	}
	return m.product, nil
}

// key pair of the current identity, which must match the network
func checkSigner(m *metadata) (*keypair.KeyPair, error) {
	keyPair, err := m.identities.keyPair(m.identity)
	if nil != err {
		return nil, err
	}
	if keyPair.Test != m.testnet {
		return nil, fmt.Errorf("identity: %q is for the wrong network", m.identity)
	}
	return keyPair, nil
}

// a named account, empty selects the current identity
func checkAccount(m *metadata, nameOrAccount string) (*account.Account, error) {
	if "" == nameOrAccount {
		keyPair, err := checkSigner(m)
		if nil != err {
			return nil, err
		}
		return keyPair.Account(), nil
	}
	a, err := m.identities.account(nameOrAccount)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, fmt.Errorf("account: %q is for the wrong network", nameOrAccount)
	}
	return a, nil
}

func checkProof(c *cli.Context) (proof.Digest, error) {
	s := c.String("proof")
	if "" == s {
		return proof.Digest{}, fmt.Errorf("proof is required")
	}
	return proof.FromHex(s)
}

func checkAmount(c *cli.Context) (uint64, error) {
	amount := c.Uint64("amount")
	if 0 == amount {
		return 0, fmt.Errorf("amount is required")
	}
	return amount, nil
}

// connect to productd
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// nonce for replay protection
func makeNonce() uint64 {
	return uint64(time.Now().UnixNano())
}
