// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/chain"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/peer"
	"github.com/bitmark-inc/tinychaind/transaction"
	"github.com/bitmark-inc/tinychaind/wire"
)

// process one incoming message
//
// an error drops only this message, the connection stays open
func (n *Node) process(from *peer.Peer, message *wire.Message) error {
	switch message.Tag {

	case wire.TagTransaction:
		tx, err := transaction.Parse(string(message.Payload))
		if nil != err {
			return err
		}
		n.reservoir.Add(tx)
		n.counts.transactions.Increment()
		n.log.Infof("peer: %s  transaction: %s", from.Address(), tx)
		return nil

	case wire.TagBlock:
		return n.receiveBlock(from, message.Payload)

	default:
		return fault.UnknownMessageTag
	}
}

// a rejected block is returned as its fault.RecordError
func (n *Node) receiveBlock(from *peer.Peer, payload []byte) error {
	b, err := block.Unpack(payload)
	if nil != err {
		return err
	}
	b.Hash = n.hasher.Hash(b)

	// claim the hash so concurrent copies from other peers are skipped
	first := nil == n.seen.Add(b.Hash, true, cache.DefaultExpiration)

	// the permissive policy appends every copy but only relays the first
	if !first && chain.PolicyPermissive != n.chain.Policy() {
		n.log.Debugf("peer: %s  block: %d  hash: %s  already seen", from.Address(), b.Index, b.Hash)
		return nil
	}

	if err := n.chain.Append(b); nil != err {
		// release the claim so the block is judged again if it is resent
		if first {
			n.seen.Delete(b.Hash)
		}
		return err
	}
	n.counts.blocksAccepted.Increment()

	n.log.Infof("peer: %s  accepted block: %d  hash: %s  transactions: %d", from.Address(), b.Index, b.Hash, len(b.Transactions))
	n.PrintChain()

	if first && n.settings.relay {
		count := n.registry.BroadcastExcept(from, wire.TagBlock, payload)
		n.log.Debugf("relayed block: %d to %d peers", b.Index, count)
	}
	return nil
}
