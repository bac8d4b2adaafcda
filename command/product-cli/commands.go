// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

var amountFlag = cli.Uint64Flag{
	Name:  "amount, a",
	Value: 0,
	Usage: "*number of units `COUNT`",
}

var proofFlag = cli.StringFlag{
	Name:  "proof, r",
	Value: "",
	Usage: "*32 byte proof as `HEX`",
}

var authorFlag = cli.StringFlag{
	Name:  "author, w",
	Value: "",
	Usage: " identity name or `ACCOUNT` of the author [current identity]",
}

var commands = []cli.Command{
	{
		Name:      "generate",
		Usage:     "generate key pair, will not store in identity file",
		ArgsUsage: "\n   (* = required)",
		Action:    runGenerate,
	},
	{
		Name:      "add",
		Usage:     "add a new identity to the identity file",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "name, N",
				Value: "",
				Usage: "*identity `NAME`",
			},
			cli.StringFlag{
				Name:  "seed, s",
				Value: "",
				Usage: " use an existing 32 byte `HEX` seed",
			},
		},
		Action: runAdd,
	},
	{
		Name:   "info",
		Usage:  "display productd node status",
		Action: runNodeInfo,
	},
	{
		Name:   "product",
		Usage:  "display all committed fields of the product",
		Action: runProductInfo,
	},
	{
		Name:   "owner",
		Usage:  "display the product owner",
		Action: runOwner,
	},
	{
		Name:   "total-supply",
		Usage:  "display shares in circulation",
		Action: runTotalSupply,
	},
	{
		Name:   "total-value",
		Usage:  "display the value held for shareholders",
		Action: runTotalValue,
	},
	{
		Name:   "share-value",
		Usage:  "display the pool value per share",
		Action: runShareValue,
	},
	{
		Name:      "balance",
		Usage:     "display shares held by an account",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "holder, o",
				Value: "",
				Usage: " identity name or `ACCOUNT` [current identity]",
			},
		},
		Action: runBalance,
	},
	{
		Name:      "transfer-ownership",
		Usage:     "hand the product to a new owner",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "receiver, R",
				Value: "",
				Usage: "*identity name or `ACCOUNT` of the new owner",
			},
		},
		Action: runTransferOwnership,
	},
	{
		Name:      "claim",
		Usage:     "claim authorship of a proof",
		ArgsUsage: "\n   (* = required)",
		Flags:     []cli.Flag{proofFlag, authorFlag},
		Action:    runClaim,
	},
	{
		Name:      "propose",
		Usage:     "propose an iteration for the owner to accept",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			proofFlag,
			authorFlag,
			cli.StringFlag{
				Name:  "location, l",
				Value: "",
				Usage: " where the contribution can be found `URI`",
			},
		},
		Action: runPropose,
	},
	{
		Name:      "accept",
		Usage:     "accept a proposal and mint shares for its contributor",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			proofFlag,
			amountFlag,
			cli.StringFlag{
				Name:  "contributor, C",
				Value: "",
				Usage: "*identity name or `ACCOUNT` to receive shares",
			},
		},
		Action: runAccept,
	},
	{
		Name:      "pay",
		Usage:     "pay value into the product pool",
		ArgsUsage: "\n   (* = required)",
		Flags:     []cli.Flag{amountFlag},
		Action:    runPay,
	},
	{
		Name:      "redeem",
		Usage:     "burn shares and receive their value",
		ArgsUsage: "\n   (* = required)",
		Flags:     []cli.Flag{amountFlag},
		Action:    runRedeem,
	},
	{
		Name:      "schedule-upgrade",
		Usage:     "owner schedules an upgrade after a grace period, at most once per block",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, g",
				Value: "",
				Usage: "*upgrade configuration `STRING`",
			},
			cli.Uint64Flag{
				Name:  "grace, G",
				Value: 0,
				Usage: " grace period in `BLOCKS`",
			},
		},
		Action: runScheduleUpgrade,
	},
	{
		Name:   "upgrade-status",
		Usage:  "display the upgrade schedule of the product",
		Action: runUpgradeStatus,
	},
	{
		Name:      "prepare-upgrade",
		Usage:     "owner names the product that holders may move to",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "next, x",
				Value: "",
				Usage: "*successor product `NAME`",
			},
		},
		Action: runPrepareUpgrade,
	},
	{
		Name:      "activate-upgrade",
		Usage:     "owner of the successor accepts holders of a previous product",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "previous, P",
				Value: "",
				Usage: "*previous product `NAME`",
			},
		},
		Action: runActivateUpgrade,
	},
	{
		Name:      "migrate",
		Usage:     "move all shares from a previous product",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "previous, P",
				Value: "",
				Usage: "*previous product `NAME`",
			},
		},
		Action: runMigrate,
	},
	{
		Name:      "events",
		Usage:     "list product events",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "kind, k",
				Value: "",
				Usage: " only events of `KIND`",
			},
			cli.StringFlag{
				Name:  "account, A",
				Value: "",
				Usage: " only events involving identity name or `ACCOUNT`",
			},
			cli.Uint64Flag{
				Name:  "start, s",
				Value: 0,
				Usage: " first `SEQUENCE` to list",
			},
			cli.IntFlag{
				Name:  "count, n",
				Value: 20,
				Usage: " maximum events to list `COUNT`",
			},
		},
		Action: runEvents,
	},
	{
		Name:      "wallet",
		Usage:     "display the external wallet of an account",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "holder, o",
				Value: "",
				Usage: " identity name or `ACCOUNT` [current identity]",
			},
		},
		Action: runWallet,
	},
	{
		Name:      "deposit",
		Usage:     "credit a wallet on a testing chain",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			amountFlag,
			cli.StringFlag{
				Name:  "holder, o",
				Value: "",
				Usage: " identity name or `ACCOUNT` [current identity]",
			},
		},
		Action: runDeposit,
	},
	{
		Name:      "reject-funds",
		Usage:     "refuse or accept again incoming payouts",
		ArgsUsage: "\n   (* = required)",
		Flags: []cli.Flag{
			cli.BoolTFlag{
				Name:  "reject, j",
				Usage: " reject payouts, --reject=false to accept again",
			},
		},
		Action: runRejectFunds,
	},
	{
		Name:  "version",
		Usage: "display product-cli version",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "%s\n", version)
			return nil
		},
	},
}
