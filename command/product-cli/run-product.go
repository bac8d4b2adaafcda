// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/productd/command/product-cli/rpccalls"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/keypair"
)

// signed request against the selected product
type productAction func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error)

func runSigned(c *cli.Context, action productAction) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkProduct(m)
	if nil != err {
		return err
	}
	signer, err := checkSigner(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "product: %s\n", name)
		fmt.Fprintf(m.e, "signer: %s\n", signer.Account())
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := action(m, name, signer, client)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runTransferOwnership(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		newOwner, err := checkAccount(m, c.String("receiver"))
		if nil != err {
			return nil, err
		}
		return client.TransferOwnership(&instruction.TransferOwnership{
			Product:  name,
			Owner:    signer.Account(),
			NewOwner: newOwner,
			Nonce:    makeNonce(),
		}, signer)
	})
}

func runClaim(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		claim, err := checkProof(c)
		if nil != err {
			return nil, err
		}
		author, err := checkAccount(m, c.String("author"))
		if nil != err {
			return nil, err
		}
		return client.ClaimAuthorship(&instruction.ClaimAuthorship{
			Product: name,
			Caller:  signer.Account(),
			Author:  author,
			Proof:   claim,
			Nonce:   makeNonce(),
		}, signer)
	})
}

func runPropose(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		contribution, err := checkProof(c)
		if nil != err {
			return nil, err
		}
		author, err := checkAccount(m, c.String("author"))
		if nil != err {
			return nil, err
		}
		return client.ProposeIteration(&instruction.ProposeIteration{
			Product:  name,
			Caller:   signer.Account(),
			Author:   author,
			Proof:    contribution,
			Location: c.String("location"),
			Nonce:    makeNonce(),
		}, signer)
	})
}

func runAccept(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		release, err := checkProof(c)
		if nil != err {
			return nil, err
		}
		amount, err := checkAmount(c)
		if nil != err {
			return nil, err
		}
		contributor, err := checkAccount(m, c.String("contributor"))
		if nil != err {
			return nil, err
		}
		return client.AcceptProposal(&instruction.AcceptProposal{
			Product:     name,
			Owner:       signer.Account(),
			Contributor: contributor,
			Proof:       release,
			Amount:      amount,
			Nonce:       makeNonce(),
		}, signer)
	})
}

func runPay(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		amount, err := checkAmount(c)
		if nil != err {
			return nil, err
		}
		return client.Pay(&instruction.Payment{
			Product: name,
			From:    signer.Account(),
			Amount:  amount,
			Nonce:   makeNonce(),
		}, signer)
	})
}

func runRedeem(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		amount, err := checkAmount(c)
		if nil != err {
			return nil, err
		}
		return client.Redeem(&instruction.Redeem{
			Product: name,
			Holder:  signer.Account(),
			Amount:  amount,
			Nonce:   makeNonce(),
		}, signer)
	})
}

func runScheduleUpgrade(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		config := c.String("config")
		if "" == config {
			return nil, fmt.Errorf("upgrade configuration is required")
		}
		return client.ExecuteUpgrade(&instruction.ExecuteUpgrade{
			Product:     name,
			Owner:       signer.Account(),
			Config:      []byte(config),
			GracePeriod: c.Uint64("grace"),
			Nonce:       makeNonce(),
		}, signer)
	})
}

func runPrepareUpgrade(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		next := c.String("next")
		if "" == next {
			return nil, fmt.Errorf("next product name is required")
		}
		return client.PrepareUpgrade(&instruction.PrepareUpgrade{
			Product: name,
			Owner:   signer.Account(),
			Next:    next,
			Nonce:   makeNonce(),
		}, signer)
	})
}

func runActivateUpgrade(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		previous := c.String("previous")
		if "" == previous {
			return nil, fmt.Errorf("previous product name is required")
		}
		return client.ActivateUpgrade(&instruction.ActivateUpgrade{
			Product:  name,
			Owner:    signer.Account(),
			Previous: previous,
			Nonce:    makeNonce(),
		}, signer)
	})
}

func runMigrate(c *cli.Context) error {
	return runSigned(c, func(m *metadata, name string, signer *keypair.KeyPair, client *rpccalls.Client) (interface{}, error) {
		previous := c.String("previous")
		if "" == previous {
			return nil, fmt.Errorf("previous product name is required")
		}
		return client.Migrate(&instruction.Migrate{
			Product:  name,
			Previous: previous,
			Holder:   signer.Account(),
			Nonce:    makeNonce(),
		}, signer)
	})
}
