// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/productd/fault"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - a 32 byte hash
//
// used for proofs of work, proofs of production releases and
// instruction identifiers; the bytes are opaque and printed in
// stored order
type Digest [DigestLength]byte

// NewDigest - SHA3-256 of a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidProofLength
	}
	copy(digest[:], buffer)
	return nil
}

// FromHex - parse a 64 character hex string, with optional 0x prefix
func FromHex(s string) (Digest, error) {
	var digest Digest
	err := digest.UnmarshalText([]byte(s))
	return digest, err
}

// IsZero - the digest of an unset proof
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - tagged hex string for %#v
func (digest Digest) GoString() string {
	return "<proof:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if len(s) >= 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	if hex.EncodedLen(DigestLength) != len(s) {
		return fault.ErrInvalidProofLength
	}
	_, err := hex.Decode(digest[:], s)
	return err
}
