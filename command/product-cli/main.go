// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"
)

type metadata struct {
	file       string
	identities *identities
	connect    string
	product    string
	identity   string
	save       bool
	testnet    bool
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "product-cli"
	app.Usage = "client for productd equity ledgers"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " select accounts for `NETWORK` [live|testing]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " productd RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identities, f",
			Value: "",
			Usage: " identity `FILE` [$XDG_CONFIG_HOME/product-cli/NETWORK-identities.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "product, p",
			Value: "",
			Usage: " product `NAME`",
		},
	}
	app.Commands = commands

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		network := c.GlobalString("network")
		switch network {
		case "live":
			network = "live"
		case "testing", "test", "local":
			network = "testing"
		default:
			return fmt.Errorf("network: %q can only be live/testing", network)
		}

		file := c.GlobalString("identities")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			dir := path.Join(p, app.Name)
			if err := os.MkdirAll(dir, 0700); nil != err {
				return err
			}
			file = path.Join(dir, network+"-identities.json")
		}

		if verbose {
			fmt.Fprintf(e, "identities file: %q\n", file)
		}

		ids, err := loadIdentities(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:       file,
			identities: ids,
			connect:    c.GlobalString("connect"),
			product:    c.GlobalString("product"),
			identity:   c.GlobalString("identity"),
			testnet:    "live" != network,
			verbose:    verbose,
			e:          e,
			w:          w,
		}
		return nil
	}

	// update the identity file if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating identities file: %s\n", m.file)
		}
		return m.identities.save(m.file)
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
