// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/util"
)

// ED25519 - the only supported key algorithm
const ED25519 = 1

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key identifying an owner, author,
// contributor, payer or shareholder
//
// the zero value is not a valid account
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - convert the checksummed base58 text form to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert the packed key variant + public key form to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: append([]byte{}, publicKey...),
	}, nil
}

// CheckSignature - verify an ed25519 signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) || ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - packed key variant followed by the public key
//
// used as the database key for balances and wallets
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding with a four byte checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Equal - same network and public key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - whether the key belongs to a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// IsZero - all zero public key
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 JSON text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
