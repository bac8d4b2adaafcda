// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/chain"
)

func TestValid(t *testing.T) {
	assert.True(t, chain.Valid(chain.Live), "live chain invalid")
	assert.True(t, chain.Valid(chain.Local), "local chain invalid")
	assert.False(t, chain.Valid("bitcoin"), "unknown chain valid")

	assert.False(t, chain.IsTesting(chain.Live), "live chain is testing")
	assert.True(t, chain.IsTesting(chain.Testing), "testing chain is not testing")
}
