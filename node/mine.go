// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/transaction"
	"github.com/bitmark-inc/tinychaind/wire"
)

// SubmitTransaction - parse a transaction, keep it and send it to all peers
func (n *Node) SubmitTransaction(text string) error {
	tx, err := transaction.Parse(text)
	if nil != err {
		return err
	}

	n.reservoir.Add(tx)
	count := n.registry.Broadcast(wire.TagTransaction, []byte(tx.String()))

	n.log.Infof("submitted transaction: %s  peers: %d", tx, count)
	return nil
}

// Mine - turn all pending transactions into a new block
//
// returns nil, nil if there was nothing to mine
func (n *Node) Mine() (*block.Block, error) {
	txs := n.reservoir.DrainAll()
	if 0 == len(txs) {
		n.log.Info("mine: no pending transactions")
		return nil, nil
	}

	n.log.Infof("mining: %d transactions  difficulty: %d", len(txs), n.chain.Difficulty())

	b, err := n.chain.Extend(txs)
	if nil != err {
		n.log.Errorf("mine error: %s", err)
		n.restore(txs)
		return nil, err
	}
	n.seen.SetDefault(b.Hash, true)
	n.counts.blocksMined.Increment()

	count := n.registry.Broadcast(wire.TagBlock, b.Pack())

	n.log.Infof("mined block: %d  hash: %s  nonce: %d  peers: %d", b.Index, b.Hash, b.Nonce, count)
	n.PrintChain()

	return b, nil
}

// AutoMine - Mine, but only on a miner node
func (n *Node) AutoMine() (*block.Block, error) {
	if !n.settings.miner {
		return nil, nil
	}
	return n.Mine()
}

func (n *Node) restore(txs []transaction.Transaction) {
	for _, tx := range txs {
		n.reservoir.Add(tx)
	}
}
