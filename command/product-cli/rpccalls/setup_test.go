// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/command/product-cli/rpccalls"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/certificate"
	"github.com/bitmark-inc/productd/rpc/fixtures"
	"github.com/bitmark-inc/productd/rpc/node"
	"github.com/bitmark-inc/productd/rpc/product"
)

// Node - stands in for the node service
type Node struct{}

func (n *Node) Info(_ *node.InfoArguments, reply *node.InfoReply) error {
	reply.Chain = "local"
	reply.Products = []string{"alpha"}
	return nil
}

// Product - checks signatures as the product service does
type Product struct{}

func (p *Product) Info(arguments *product.InfoArguments, reply *ledger.Info) error {
	if "alpha" != arguments.Product {
		return fault.ErrProductNotFound
	}
	reply.Name = arguments.Product
	reply.Supply = 12
	return nil
}

func (p *Product) TransferOwnership(arguments *instruction.TransferOwnership, reply *product.Reply) error {
	packed, err := instruction.Verify(arguments)
	if nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

func serve(t *testing.T) (string, func()) {
	cert, key := fixtures.CertificateAndKey()
	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cert, key)
	assert.Nil(t, err, "wrong certificate")

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	assert.Nil(t, err, "wrong listen")

	s := rpc.NewServer()
	assert.Nil(t, s.Register(&Node{}), "wrong register")
	assert.Nil(t, s.Register(&Product{}), "wrong register")

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()
	return l.Addr().String(), func() { l.Close() }
}

func TestClientQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	address, stop := serve(t)
	defer stop()

	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(address, true, &verbose)
	assert.Nil(t, err, "wrong NewClient")
	defer client.Close()

	info, err := client.NodeInfo()
	assert.Nil(t, err, "wrong NodeInfo")
	assert.Equal(t, "local", info.Chain, "wrong chain")
	assert.Equal(t, []string{"alpha"}, info.Products, "wrong products")

	p, err := client.Info("alpha")
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, uint64(12), p.Supply, "wrong supply")

	_, err = client.Info("beta")
	assert.NotNil(t, err, "missing product found")
	assert.Equal(t, fault.ErrProductNotFound.Error(), err.Error(), "wrong error")

	assert.Contains(t, verbose.String(), "Node.Info request", "verbose output missing")
}

func TestClientSignedSubmission(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	address, stop := serve(t)
	defer stop()

	client, err := rpccalls.NewClient(address, false, nil)
	assert.Nil(t, err, "wrong NewClient")
	defer client.Close()

	owner := fixtures.KeyPair(0x01)
	receiver := fixtures.KeyPair(0x02)

	transfer := &instruction.TransferOwnership{
		Product:  "alpha",
		Owner:    owner.Account(),
		NewOwner: receiver.Account(),
		Nonce:    99,
	}
	reply, err := client.TransferOwnership(transfer, owner)
	assert.Nil(t, err, "wrong TransferOwnership")
	assert.NotEqual(t, proof.Digest{}, reply.ID, "missing id")

	_, err = client.TransferOwnership(&instruction.TransferOwnership{
		Product:  "alpha",
		Owner:    owner.Account(),
		NewOwner: receiver.Account(),
		Nonce:    100,
	}, receiver)
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "signed with the wrong key")
}
