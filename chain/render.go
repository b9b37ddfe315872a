// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/tinychaind/block"
)

// Render - print one line per block
func (c *Chain) Render(w io.Writer) error {
	blocks := c.Blocks()

	_, err := fmt.Fprintf(w, "chain: %d blocks  difficulty: %d  policy: %s\n", len(blocks), c.difficulty, c.policy)
	if nil != err {
		return err
	}
	for _, b := range blocks {
		marker := ""
		if b.IsGenesis() {
			marker = "  [genesis]"
		}
		_, err := fmt.Fprintf(w, "  #%d  hash: %-16s  prev: %-16s  txs: %d%s\n",
			b.Index,
			block.Short(b.Hash),
			block.Short(b.PreviousHash),
			len(b.Transactions),
			marker,
		)
		if nil != err {
			return err
		}
	}
	return nil
}
