// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrades

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/gate"
	"github.com/bitmark-inc/productd/rpc/ratelimit"
	"github.com/bitmark-inc/productd/upgrade"
)

const (
	rateLimitUpgrade = 200
	rateBurstUpgrade = 100
)

// Timers - upgrade timers addressed by product name
type Timers interface {
	ExecuteUpgrade(product string, caller *account.Account, config []byte, gracePeriod uint64) (*event.UpgradeSchedule, error)
	UpgradeStatus(product string) (*upgrade.Status, error)
}

// Upgrade - type for RPC
type Upgrade struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gate    gate.Gate
	Timers  Timers
}

// New - upgrade service
func New(log *logger.L, g gate.Gate, timers Timers) *Upgrade {
	return &Upgrade{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitUpgrade, rateBurstUpgrade),
		Gate:    g,
		Timers:  timers,
	}
}

// ExecuteReply - the schedule that was stored
type ExecuteReply struct {
	ID           proof.Digest `json:"id"`
	UpgradeBlock uint64       `json:"upgradeBlock"`
	GracePeriod  uint64       `json:"gracePeriod"`
	Config       proof.Digest `json:"config"`
}

// Execute - owner schedules an upgrade from the current block
//
// rescheduling within the block of the current schedule returns
// fault.ErrUpgradeSameBlock; resubmit with a new nonce in a later block
func (u *Upgrade) Execute(arguments *instruction.ExecuteUpgrade, reply *ExecuteReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	u.Log.Infof("Upgrade.Execute: %+v", arguments)

	packed, err := u.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	schedule, err := u.Timers.ExecuteUpgrade(arguments.Product, arguments.Owner, arguments.Config, arguments.GracePeriod)
	if nil != err {
		return err
	}
	reply.ID = packed.ID()
	reply.UpgradeBlock = schedule.UpgradeBlock
	reply.GracePeriod = schedule.GracePeriod
	reply.Config = schedule.Config
	return nil
}

// StatusArguments - arguments for RPC
type StatusArguments struct {
	Product string `json:"product"`
}

// Status - the schedule as seen from the current block
func (u *Upgrade) Status(arguments *StatusArguments, reply *upgrade.Status) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Product {
		return fault.ErrMissingParameters
	}

	status, err := u.Timers.UpgradeStatus(arguments.Product)
	if nil != err {
		return err
	}
	*reply = *status
	return nil
}
