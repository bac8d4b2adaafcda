// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/instruction"
)

func runWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkAccount(m, c.String("holder"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Wallet(holder)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount, err := checkAmount(c)
	if nil != err {
		return err
	}
	holder, err := checkAccount(m, c.String("holder"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Deposit(holder, amount)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runRejectFunds(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkSigner(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RejectFunds(&instruction.RejectFunds{
		Account: signer.Account(),
		Reject:  c.BoolT("reject"),
		Nonce:   makeNonce(),
	}, signer)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
