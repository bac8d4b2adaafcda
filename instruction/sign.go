// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/keypair"
)

// Sign - sign an instruction with the signer's key pair and return the
// packed result
func Sign(i Instruction, keyPair *keypair.KeyPair) (Packed, error) {
	signer := i.Signer()
	if nil == signer {
		return nil, fault.ErrMissingParameters
	}
	if !signer.Equal(keyPair.Account()) {
		return nil, fault.ErrInvalidPrivateKey
	}

	*i.signature() = nil
	message, err := i.Pack(signer)
	if fault.ErrInvalidSignature != err {
		return nil, err
	}

	*i.signature() = keyPair.Sign(message)
	return i.Pack(signer)
}

// Verify - check the signature against the signer's account
func Verify(i Instruction) (Packed, error) {
	signer := i.Signer()
	if nil == signer {
		return nil, fault.ErrMissingParameters
	}
	return i.Pack(signer)
}
