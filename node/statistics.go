// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/tinychaind/counter"
)

type counts struct {
	connections    counter.Counter
	transactions   counter.Counter
	blocksAccepted counter.Counter
	blocksRejected counter.Counter
	blocksMined    counter.Counter
	dropped        counter.Counter
}

// Statistics - snapshot of the node counters
type Statistics struct {
	Connections    uint64 `json:"connections"`
	Transactions   uint64 `json:"transactions"`
	BlocksAccepted uint64 `json:"blocksAccepted"`
	BlocksRejected uint64 `json:"blocksRejected"`
	BlocksMined    uint64 `json:"blocksMined"`
	Dropped        uint64 `json:"dropped"`
}

// Statistics - read all counters
func (n *Node) Statistics() Statistics {
	return Statistics{
		Connections:    n.counts.connections.Uint64(),
		Transactions:   n.counts.transactions.Uint64(),
		BlocksAccepted: n.counts.blocksAccepted.Uint64(),
		BlocksRejected: n.counts.blocksRejected.Uint64(),
		BlocksMined:    n.counts.blocksMined.Uint64(),
		Dropped:        n.counts.dropped.Uint64(),
	}
}
