// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"time"

	"github.com/bitmark-inc/tinychaind/blockdigest"
	"github.com/bitmark-inc/tinychaind/transaction"
)

// GenesisPreviousHash - sentinel previous hash of the genesis block
const GenesisPreviousHash = "0"

// every node must create an identical genesis block
var genesisTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// Block - the hash is only changed while mining
type Block struct {
	Index        uint64
	CreatedAt    time.Time
	PreviousHash string
	Hash         string
	Nonce        int64
	Transactions []transaction.Transaction
}

// Hasher - computes the digest of a block from all its other fields
type Hasher interface {
	Hash(b *Block) string
}

// DigestHasher - the SHA3 hasher
type DigestHasher struct{}

// Hash - implement Hasher
func (DigestHasher) Hash(b *Block) string {
	return blockdigest.Digest(b.Index, b.CreatedAt, b.PreviousHash, b.Nonce, b.Transactions)
}

// New - an unmined block following previous
func New(previous *Block, txs []transaction.Transaction) *Block {
	return &Block{
		Index:        previous.Index + 1,
		CreatedAt:    time.Now().UTC(),
		PreviousHash: previous.Hash,
		Nonce:        0,
		Transactions: txs,
	}
}

// Genesis - the fixed first block
func Genesis(hasher Hasher) *Block {
	b := &Block{
		Index:        0,
		CreatedAt:    genesisTime,
		PreviousHash: GenesisPreviousHash,
		Nonce:        0,
		Transactions: []transaction.Transaction{},
	}
	b.Hash = hasher.Hash(b)
	return b
}

// IsGenesis - true for index zero
func (b *Block) IsGenesis() bool {
	return 0 == b.Index
}

// Mine - search nonces from zero until the hash meets the difficulty
func (b *Block) Mine(hasher Hasher, difficulty int) {
	for b.Nonce = 0; ; b.Nonce += 1 {
		b.Hash = hasher.Hash(b)
		if blockdigest.MeetsDifficulty(b.Hash, difficulty) {
			return
		}
	}
}

// Short - a hash prefix of at most 16 characters for display
func Short(hash string) string {
	if len(hash) > 16 {
		return hash[:16]
	}
	return hash
}
