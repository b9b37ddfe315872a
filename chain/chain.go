// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/blockdigest"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/transaction"
)

// Chain - append only sequence of blocks starting from genesis
type Chain struct {
	sync.RWMutex

	blocks     []*block.Block
	difficulty int
	policy     Policy
	hasher     block.Hasher
}

// New - create a chain holding only the genesis block
func New(difficulty int, policy Policy, hasher block.Hasher) (*Chain, error) {
	if difficulty < 0 || difficulty > blockdigest.Length {
		return nil, fault.InvalidDifficulty
	}

	c := &Chain{
		blocks:     []*block.Block{block.Genesis(hasher)},
		difficulty: difficulty,
		policy:     policy,
		hasher:     hasher,
	}
	return c, nil
}

// Difficulty - required leading zero count
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Policy - acceptance policy in force
func (c *Chain) Policy() Policy {
	return c.policy
}

// Latest - the last block, never nil
func (c *Chain) Latest() *block.Block {
	c.RLock()
	defer c.RUnlock()
	return c.blocks[len(c.blocks)-1]
}

// Height - index of the latest block
func (c *Chain) Height() uint64 {
	return c.Latest().Index
}

// Length - number of blocks including genesis
func (c *Chain) Length() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.blocks)
}

// Blocks - copy of the block list
func (c *Chain) Blocks() []*block.Block {
	c.RLock()
	defer c.RUnlock()
	blocks := make([]*block.Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// Validate - check a block against the current latest block
//
// this is the strict policy, it is applied regardless of the
// configured policy
func (c *Chain) Validate(b *block.Block) error {
	c.RLock()
	defer c.RUnlock()
	return c.validate(b)
}

// must hold lock
func (c *Chain) validate(b *block.Block) error {
	latest := c.blocks[len(c.blocks)-1]
	if b.PreviousHash != latest.Hash {
		return fault.PreviousHashMismatch
	}
	if !blockdigest.MeetsDifficulty(b.Hash, c.difficulty) {
		return fault.InsufficientDifficulty
	}
	if c.hasher.Hash(b) != b.Hash {
		return fault.HashMismatch
	}
	return nil
}

// Append - add a block to the end of the chain subject to the policy
func (c *Chain) Append(b *block.Block) error {
	c.Lock()
	defer c.Unlock()

	if PolicyPermissive != c.policy {
		if err := c.validate(b); nil != err {
			return err
		}
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// Extend - build, mine and append a block on top of the latest block
//
// mining runs without the lock; if another block was appended in the
// meantime the block is rebuilt on the new latest block and mined again
func (c *Chain) Extend(txs []transaction.Transaction) (*block.Block, error) {
	for {
		previous := c.Latest()

		b := block.New(previous, txs)
		b.Mine(c.hasher, c.difficulty)

		c.Lock()
		if previous != c.blocks[len(c.blocks)-1] {
			c.Unlock()
			continue
		}
		err := c.validate(b)
		if nil == err {
			c.blocks = append(c.blocks, b)
		}
		c.Unlock()

		if nil != err {
			return nil, err
		}
		return b, nil
	}
}
