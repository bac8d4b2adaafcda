// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/storage"
)

const testingDirName = "testing"

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
}

func teardown() {
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
