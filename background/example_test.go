// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/productd/background"
)

type ticker struct {
	ticks int
}

func Example() {
	t := &ticker{}

	p := background.Start(background.Processes{t}, "block")
	p.Stop()

	fmt.Printf("ticks: %d\n", t.ticks)

	// Output:
	// block: running
	// block: stopped
	// ticks: 1
}

func (t *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("%s: running\n", args)

	<-shutdown
	t.ticks += 1

	fmt.Printf("%s: stopped\n", args)
}
