// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/registry"
	"github.com/bitmark-inc/productd/rpc"
	"github.com/bitmark-inc/productd/rpc/fixtures"
	"github.com/bitmark-inc/productd/rpc/listeners"
	"github.com/bitmark-inc/productd/rpc/node"
	"github.com/bitmark-inc/productd/wallet"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cert, key := fixtures.CertificateAndKey()
	certificateFile := filepath.Join(fixtures.Directory(), "rpc.crt")
	keyFile := filepath.Join(fixtures.Directory(), "rpc.key")
	assert.Nil(t, ioutil.WriteFile(certificateFile, []byte(cert), 0600), "wrong certificate write")
	assert.Nil(t, ioutil.WriteFile(keyFile, []byte(key), 0600), "wrong key write")

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}

	w := wallet.New()
	err := rpc.Initialise(&configuration, "2.0", registry.New(w), w)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&configuration, "2.0", registry.New(w), w)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "initialised twice")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.Nil(t, err, "wrong dial")

	client := jsonrpc.NewClient(conn)
	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "2.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
	client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "finalised twice")
}

func TestInitialiseMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        filepath.Join(fixtures.Directory(), "absent.crt"),
		PrivateKey:         filepath.Join(fixtures.Directory(), "absent.key"),
	}

	w := wallet.New()
	err := rpc.Initialise(&configuration, "2.0", registry.New(w), w)
	assert.NotNil(t, err, "initialised without certificate")
}
