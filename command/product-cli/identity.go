// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/keypair"
)

// identity - a named key pair
type identity struct {
	Name    string             `json:"name"`
	KeyPair keypair.RawKeyPair `json:"key_pair"`
}

// identities - contents of the identity file
type identities struct {
	Default    string     `json:"default_identity"`
	Identities []identity `json:"identities"`
}

// load the identity file, a missing file is empty
func loadIdentities(file string) (*identities, error) {
	ids := &identities{
		Identities: []identity{},
	}
	buffer, err := ioutil.ReadFile(file)
	if os.IsNotExist(err) {
		return ids, nil
	}
	if nil != err {
		return nil, err
	}
	if err := json.Unmarshal(buffer, ids); nil != err {
		return nil, err
	}
	return ids, nil
}

// save the identity file readable only by its owner
func (ids *identities) save(file string) error {
	buffer, err := json.MarshalIndent(ids, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(file, buffer, 0600)
}

// add an identity, the first one becomes the default
func (ids *identities) add(name string, keyPair *keypair.KeyPair) error {
	if "" == name {
		return fmt.Errorf("identity name is required")
	}
	for _, id := range ids.Identities {
		if id.Name == name {
			return fmt.Errorf("identity: %q already exists", name)
		}
	}
	ids.Identities = append(ids.Identities, identity{
		Name:    name,
		KeyPair: *keyPair.Raw(),
	})
	if "" == ids.Default {
		ids.Default = name
	}
	return nil
}

// key pair of a named identity, empty name selects the default
func (ids *identities) keyPair(name string) (*keypair.KeyPair, error) {
	if "" == name {
		name = ids.Default
	}
	for _, id := range ids.Identities {
		if id.Name == name {
			raw := id.KeyPair
			return keypair.FromRaw(&raw)
		}
	}
	return nil, fmt.Errorf("identity: %q not found", name)
}

// account from either an identity name or a base58 account
func (ids *identities) account(nameOrAccount string) (*account.Account, error) {
	if "" == nameOrAccount {
		return nil, fmt.Errorf("account is required")
	}
	for _, id := range ids.Identities {
		if id.Name == nameOrAccount {
			return account.FromBase58(id.KeyPair.Account)
		}
	}
	return account.FromBase58(nameOrAccount)
}
