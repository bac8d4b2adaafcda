// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
)

// KeyPair - ed25519 keys and the seed they were derived from
type KeyPair struct {
	Test       bool
	Seed       []byte
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of a key pair for storing in the client
// identity file
type RawKeyPair struct {
	Test       bool   `json:"test"`
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// New - create a key pair from secure random data
func New(test bool) (*KeyPair, error) {
	seed := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	return FromSeed(seed, test)
}

// FromSeed - derive the keys from a 32 byte seed
func FromSeed(seed []byte, test bool) (*KeyPair, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		Test:       test,
		Seed:       append([]byte{}, seed...),
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// FromRaw - restore a key pair from its stored text form
func FromRaw(raw *RawKeyPair) (*KeyPair, error) {
	seed, err := hex.DecodeString(raw.Seed)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return FromSeed(seed, raw.Test)
}

// Raw - text form of the key pair
func (keyPair *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Test:       keyPair.Test,
		Seed:       hex.EncodeToString(keyPair.Seed),
		Account:    keyPair.Account().String(),
		PublicKey:  hex.EncodeToString(keyPair.PublicKey),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
}

// Account - the account identified by the public key
func (keyPair *KeyPair) Account() *account.Account {
	return &account.Account{
		Test:      keyPair.Test,
		PublicKey: append([]byte{}, keyPair.PublicKey...),
	}
}

// Sign - ed25519 signature of a message
func (keyPair *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(keyPair.PrivateKey, message)
}
