// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/ledger"
)

// fetch product info and print the part selected by f
func productInfo(c *cli.Context, f func(*ledger.Info) interface{}) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info(name)
	if nil != err {
		return err
	}
	printJson(m.w, f(info))
	return nil
}

func runProductInfo(c *cli.Context) error {
	return productInfo(c, func(info *ledger.Info) interface{} {
		return info
	})
}

func runOwner(c *cli.Context) error {
	return productInfo(c, func(info *ledger.Info) interface{} {
		return struct {
			Product string           `json:"product"`
			Owner   *account.Account `json:"owner"`
		}{info.Name, info.Owner}
	})
}

func runTotalSupply(c *cli.Context) error {
	return productInfo(c, func(info *ledger.Info) interface{} {
		return struct {
			Product     string `json:"product"`
			TotalSupply uint64 `json:"totalSupply"`
		}{info.Name, info.Supply}
	})
}

func runTotalValue(c *cli.Context) error {
	return productInfo(c, func(info *ledger.Info) interface{} {
		return struct {
			Product    string `json:"product"`
			TotalValue uint64 `json:"totalValue"`
		}{info.Name, info.Pool}
	})
}

func runShareValue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ShareValue(name)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
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

	reply, err := client.Balance(name, holder)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runUpgradeStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpgradeStatus(name)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
