// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/ledger/mocks"
	"github.com/bitmark-inc/productd/storage"
)

const testingDirName = "testing"

var (
	owner = makeAccount(0x01)
	alice = makeAccount(0x02)
	bob   = makeAccount(0x03)
)

func setup(t *testing.T) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(testingDirName, "test"), storage.ReadWrite)
	assert.Nil(t, err, "wrong storage Initialise")

	err = blockheader.Initialise()
	assert.Nil(t, err, "wrong blockheader Initialise")
}

func teardown() {
	_ = blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, 32),
	}
}

// deployed product with a payer mock that expects no calls unless the
// test adds expectations
func deployed(t *testing.T, name string) (*ledger.Ledger, *mocks.MockPayer, *gomock.Controller) {
	ctl := gomock.NewController(t)
	payer := mocks.NewMockPayer(ctl)

	l, err := ledger.New(name, payer)
	assert.Nil(t, err, "wrong New")

	err = l.Deploy(owner)
	assert.Nil(t, err, "wrong Deploy")

	return l, payer, ctl
}
