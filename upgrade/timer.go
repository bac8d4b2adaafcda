// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrade

import (
	"math"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/metrics"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/storage"
)

// OwnerSource - the authority that may schedule upgrades
type OwnerSource interface {
	Name() string
	Owner() (*account.Account, error)
}

// State - derived from the stored schedule and the current block
type State string

// timer states
const (
	Unscheduled State = "Unscheduled"
	Scheduled   State = "Scheduled"
	Finalized   State = "Finalized"
)

// fields under the product key in the Upgrades pool
const (
	blockField  = 'B'
	graceField  = 'G'
	configField = 'C'
)

// Timer - records when an upgrade was scheduled and how long holders
// have to react
type Timer struct {
	product string
	key     []byte
	owner   OwnerSource
	log     *logger.L
}

// Status - the schedule as seen from a given block
type Status struct {
	State        State        `json:"state"`
	Block        uint64       `json:"block"`
	UpgradeBlock uint64       `json:"upgradeBlock"`
	GracePeriod  uint64       `json:"gracePeriod"`
	FinalBlock   uint64       `json:"finalBlock"`
	Elapsed      uint64       `json:"elapsed"`
	Remaining    uint64       `json:"remaining"`
	Config       proof.Digest `json:"config"`
}

// New - timer sharing the owner of a product
func New(owner OwnerSource) *Timer {
	return &Timer{
		product: owner.Name(),
		key:     event.ProductKey(owner.Name()),
		owner:   owner,
		log:     logger.New("upgrade:" + owner.Name()),
	}
}

func (t *Timer) fieldKey(field byte) []byte {
	key := make([]byte, 0, len(t.key)+1)
	return append(append(key, t.key...), field)
}

// ExecuteUpgrade - owner schedules an upgrade at the current block
//
// config is not interpreted, only its digest is kept; scheduling again
// overwrites the previous schedule from a later block, a second schedule
// in the same block fails with ErrUpgradeSameBlock and may be retried
// once the block height advances
func (t *Timer) ExecuteUpgrade(caller *account.Account, config []byte, gracePeriod uint64) (*event.UpgradeSchedule, error) {
	schedule, err := t.execute(caller, config, gracePeriod)
	metrics.Operation(t.product, "executeUpgrade", err)
	return schedule, err
}

func (t *Timer) execute(caller *account.Account, config []byte, gracePeriod uint64) (*event.UpgradeSchedule, error) {
	if nil == caller {
		return nil, fault.ErrMissingParameters
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	block := blockheader.Height()

	owner, err := t.owner.Owner()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if !owner.Equal(caller) {
		trx.Abort()
		t.log.Warnf("schedule in block: %d  caller: %s  error: %s", block, caller, fault.ErrUnauthorised)
		return nil, fault.ErrUnauthorised
	}

	previous, _ := trx.GetN(storage.Pool.Upgrades, t.fieldKey(blockField))
	if previous == block {
		trx.Abort()
		return nil, fault.ErrUpgradeSameBlock
	}

	digest := proof.NewDigest(config)
	trx.PutN(storage.Pool.Upgrades, t.fieldKey(blockField), block)
	trx.PutN(storage.Pool.Upgrades, t.fieldKey(graceField), gracePeriod)
	trx.Put(storage.Pool.Upgrades, t.fieldKey(configField), digest[:])

	schedule := &event.UpgradeSchedule{
		Owner:        caller,
		UpgradeBlock: block,
		GracePeriod:  gracePeriod,
		Config:       digest,
	}
	entry := event.Append(trx, t.product, block, schedule)

	err = trx.Commit()
	if nil != err {
		t.log.Errorf("schedule in block: %d  commit error: %s", block, err)
		return nil, err
	}

	t.log.Infof("upgrade block: %d  grace period: %d  config: %s", block, gracePeriod, digest)
	event.Announce(entry)

	return schedule, nil
}

// UpgradeBlock - block of the latest schedule, zero if never scheduled
func (t *Timer) UpgradeBlock() uint64 {
	n, _ := storage.Pool.Upgrades.GetN(t.fieldKey(blockField))
	return n
}

// GracePeriod - blocks after the upgrade block before it is final
func (t *Timer) GracePeriod() uint64 {
	n, _ := storage.Pool.Upgrades.GetN(t.fieldKey(graceField))
	return n
}

// Status - schedule as seen from the current block
func (t *Timer) Status() Status {
	return t.StatusAt(blockheader.Height())
}

// StatusAt - schedule as seen from a given block
//
// the stored fields are read from one committed state
func (t *Timer) StatusAt(height uint64) Status {
	status := Status{
		State: Unscheduled,
		Block: height,
	}

	snap, err := storage.NewSnapshot()
	if nil != err {
		return status
	}
	defer snap.Release()

	status.UpgradeBlock, _ = snap.GetN(storage.Pool.Upgrades, t.fieldKey(blockField))
	status.GracePeriod, _ = snap.GetN(storage.Pool.Upgrades, t.fieldKey(graceField))
	if 0 == status.UpgradeBlock {
		return status
	}

	if buffer := snap.Get(storage.Pool.Upgrades, t.fieldKey(configField)); nil != buffer {
		err := proof.FromBytes(&status.Config, buffer)
		logger.PanicIfError("upgrade.config", err)
	}

	status.FinalBlock = finalBlock(status.UpgradeBlock, status.GracePeriod)
	if height > status.UpgradeBlock {
		status.Elapsed = height - status.UpgradeBlock
	}
	if height >= status.FinalBlock {
		status.State = Finalized
		return status
	}
	status.State = Scheduled
	status.Remaining = status.FinalBlock - height
	return status
}

// saturates so a huge grace period never finalises
func finalBlock(upgradeBlock uint64, gracePeriod uint64) uint64 {
	if gracePeriod > math.MaxUint64-upgradeBlock {
		return math.MaxUint64
	}
	return upgradeBlock + gracePeriod
}
