// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/rpc/events"
)

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
	if nil != err {
		return err
	}

	var filter *account.Account
	if s := c.String("account"); "" != s {
		filter, err = checkAccount(m, s)
		if nil != err {
			return err
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Events(&events.ListArguments{
		Product: name,
		Kind:    c.String("kind"),
		Account: filter,
		Start:   c.Uint64("start"),
		Count:   c.Int("count"),
	})
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
