// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := keypair.New(m.testnet)
	if nil != err {
		return err
	}
	printJson(m.w, keyPair.Raw())
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("identity name is required")
	}

	var keyPair *keypair.KeyPair
	var err error
	if s := c.String("seed"); "" != s {
		seed, err := hex.DecodeString(s)
		if nil != err {
			return err
		}
		keyPair, err = keypair.FromSeed(seed, m.testnet)
		if nil != err {
			return err
		}
	} else {
		keyPair, err = keypair.New(m.testnet)
		if nil != err {
			return err
		}
	}

	if err := m.identities.add(name, keyPair); nil != err {
		return err
	}
	m.save = true

	if m.verbose {
		fmt.Fprintf(m.e, "added identity: %s\n", name)
	}
	printJson(m.w, struct {
		Name    string `json:"name"`
		Account string `json:"account"`
	}{
		Name:    name,
		Account: keyPair.Account().String(),
	})
	return nil
}
