// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/keypair"
	"github.com/bitmark-inc/productd/mode"
	"github.com/bitmark-inc/productd/rpc/gate"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// Directory - scratch directory used by the test logger
func Directory() string {
	return dir
}

// KeyPair - deterministic testing key pair
func KeyPair(b byte) *keypair.KeyPair {
	kp, err := keypair.FromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return kp
}

// Owner, Holder - the testing key pairs shared by the service tests
var (
	Owner  = KeyPair(0x11)
	Holder = KeyPair(0x22)
)

// CertificateAndKey - PEM encoded self signed certificate and its key
func CertificateAndKey() (string, string) {
	validUntil := time.Now().Add(24 * time.Hour)
	certificate, key, err := certgen.NewTLSCertPair("productd test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(certificate), string(key)
}

// Gate - admits every correctly signed instruction from a testing account
func Gate() gate.Gate {
	return gate.Gate{
		IsNormalMode:   func(mode.Mode) bool { return true },
		IsTestingChain: func() bool { return true },
		Record:         func(instruction.Packed) error { return nil },
	}
}
