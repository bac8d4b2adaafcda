// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upgrades_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/fixtures"
	"github.com/bitmark-inc/productd/rpc/mocks"
	"github.com/bitmark-inc/productd/rpc/upgrades"
	"github.com/bitmark-inc/productd/upgrade"
)

func TestExecute(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTimers(ctl)
	u := upgrades.New(logger.New(fixtures.LogCategory), fixtures.Gate(), m)

	config := []byte(`{"version":2}`)
	arg := &instruction.ExecuteUpgrade{
		Product:     "alpha",
		Owner:       fixtures.Owner.Account(),
		Config:      config,
		GracePeriod: 700,
		Nonce:       1,
	}
	packed, err := instruction.Sign(arg, fixtures.Owner)
	assert.Nil(t, err, "wrong Sign")

	schedule := &event.UpgradeSchedule{
		Owner:        arg.Owner,
		UpgradeBlock: 12,
		GracePeriod:  700,
		Config:       proof.NewDigest(config),
	}
	m.EXPECT().ExecuteUpgrade("alpha", arg.Owner, config, uint64(700)).Return(schedule, nil).Times(1)

	var reply upgrades.ExecuteReply
	err = u.Execute(arg, &reply)
	assert.Nil(t, err, "wrong Execute")
	assert.Equal(t, packed.ID(), reply.ID, "wrong id")
	assert.Equal(t, uint64(12), reply.UpgradeBlock, "wrong upgrade block")
	assert.Equal(t, uint64(700), reply.GracePeriod, "wrong grace period")
	assert.Equal(t, schedule.Config, reply.Config, "wrong config digest")
}

func TestExecuteSameBlock(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTimers(ctl)
	u := upgrades.New(logger.New(fixtures.LogCategory), fixtures.Gate(), m)

	arg := &instruction.ExecuteUpgrade{
		Product:     "alpha",
		Owner:       fixtures.Owner.Account(),
		Config:      []byte{0x02},
		GracePeriod: 5,
		Nonce:       2,
	}
	_, err := instruction.Sign(arg, fixtures.Owner)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().ExecuteUpgrade("alpha", arg.Owner, arg.Config, uint64(5)).Return(nil, fault.ErrUpgradeSameBlock).Times(1)

	var reply upgrades.ExecuteReply
	err = u.Execute(arg, &reply)
	assert.Equal(t, fault.ErrUpgradeSameBlock, err, "wrong error")
	assert.Contains(t, err.Error(), "retry in the next block", "error does not say when to retry")
	assert.Equal(t, uint64(0), reply.UpgradeBlock, "reply filled on error")
}

func TestExecuteWrongSigner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTimers(ctl)
	u := upgrades.New(logger.New(fixtures.LogCategory), fixtures.Gate(), m)

	arg := &instruction.ExecuteUpgrade{
		Product:     "alpha",
		Owner:       fixtures.Owner.Account(),
		GracePeriod: 1,
		Nonce:       1,
	}
	_, err := instruction.Sign(arg, fixtures.Holder)
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "signed by wrong key")

	var reply upgrades.ExecuteReply
	err = u.Execute(arg, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "unsigned upgrade accepted")
}

func TestStatus(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTimers(ctl)
	u := upgrades.New(logger.New(fixtures.LogCategory), fixtures.Gate(), m)

	status := &upgrade.Status{
		State:        upgrade.Scheduled,
		Block:        15,
		UpgradeBlock: 12,
		GracePeriod:  700,
		FinalBlock:   712,
		Elapsed:      3,
		Remaining:    697,
	}
	m.EXPECT().UpgradeStatus("alpha").Return(status, nil).Times(1)
	m.EXPECT().UpgradeStatus("missing").Return(nil, fault.ErrProductNotFound).Times(1)

	var reply upgrade.Status
	err := u.Status(&upgrades.StatusArguments{Product: "alpha"}, &reply)
	assert.Nil(t, err, "wrong Status")
	assert.Equal(t, *status, reply, "wrong status")

	err = u.Status(&upgrades.StatusArguments{Product: "missing"}, &reply)
	assert.Equal(t, fault.ErrProductNotFound, err, "wrong error")
}
