// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/blockdigest"
	"github.com/bitmark-inc/tinychaind/chain"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/mocks"
	"github.com/bitmark-inc/tinychaind/transaction"
)

const testDifficulty = 2

var hasher = block.DigestHasher{}

func newChain(t *testing.T, policy chain.Policy) *chain.Chain {
	c, err := chain.New(testDifficulty, policy, hasher)
	if nil != err {
		t.Fatalf("chain create error: %s", err)
	}
	return c
}

func someTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		transaction.New("alice", "bob", decimal.New(10, 0)),
	}
}

// block whose previous hash is wrong but is otherwise valid
func wrongPreviousBlock(c *chain.Chain) *block.Block {
	b := block.New(c.Latest(), someTransactions())
	b.PreviousHash = "not-the-latest-hash"
	b.Mine(hasher, testDifficulty)
	return b
}

// block whose correct hash does not meet the difficulty
func lowDifficultyBlock(c *chain.Chain) *block.Block {
	b := block.New(c.Latest(), someTransactions())
	for b.Nonce = 0; ; b.Nonce += 1 {
		b.Hash = hasher.Hash(b)
		if !blockdigest.MeetsDifficulty(b.Hash, testDifficulty) {
			return b
		}
	}
}

// block whose stored hash no longer matches its contents
func tamperedBlock(c *chain.Chain) *block.Block {
	b := block.New(c.Latest(), someTransactions())
	b.Mine(hasher, testDifficulty)
	b.Transactions = append(b.Transactions, transaction.New("mallory", "mallory", decimal.New(1000, 0)))
	return b
}

func TestNew(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)

	assert.Equal(t, 1, c.Length(), "wrong length")
	assert.Equal(t, uint64(0), c.Height(), "wrong height")
	assert.Equal(t, uint64(0), c.Latest().Index, "genesis index not zero")
	assert.Equal(t, block.GenesisPreviousHash, c.Latest().PreviousHash, "wrong genesis previous hash")
	assert.Equal(t, testDifficulty, c.Difficulty(), "wrong difficulty")
}

func TestNewInvalidDifficulty(t *testing.T) {
	_, err := chain.New(-1, chain.PolicyStrict, hasher)
	assert.Equal(t, fault.InvalidDifficulty, err, "negative difficulty accepted")

	_, err = chain.New(blockdigest.Length+1, chain.PolicyStrict, hasher)
	assert.Equal(t, fault.InvalidDifficulty, err, "excessive difficulty accepted")
}

func TestStrictAcceptsValidBlock(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)
	genesis := c.Latest()

	b := block.New(genesis, someTransactions())
	b.Mine(hasher, testDifficulty)

	assert.Nil(t, c.Append(b), "valid block rejected")
	assert.Equal(t, 2, c.Length(), "wrong length")
	assert.Equal(t, genesis.Hash, c.Latest().PreviousHash, "not linked to genesis")
}

func TestStrictRejectsWrongPrevious(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)
	err := c.Append(wrongPreviousBlock(c))
	assert.Equal(t, fault.PreviousHashMismatch, err, "wrong error")
	assert.Equal(t, 1, c.Length(), "chain changed")
}

func TestStrictRejectsLowDifficulty(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)
	err := c.Append(lowDifficultyBlock(c))
	assert.Equal(t, fault.InsufficientDifficulty, err, "wrong error")
	assert.Equal(t, 1, c.Length(), "chain changed")
}

func TestStrictRejectsHashMismatch(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)
	err := c.Append(tamperedBlock(c))
	assert.Equal(t, fault.HashMismatch, err, "wrong error")
	assert.Equal(t, 1, c.Length(), "chain changed")
}

// the permissive policy reproduces the unchecked append: every one
// of the blocks rejected above is accepted
func TestPermissiveAcceptsInvalidBlocks(t *testing.T) {
	c := newChain(t, chain.PolicyPermissive)

	assert.Nil(t, c.Append(wrongPreviousBlock(c)), "wrong previous rejected")
	assert.Nil(t, c.Append(lowDifficultyBlock(c)), "low difficulty rejected")
	assert.Nil(t, c.Append(tamperedBlock(c)), "tampered block rejected")
	assert.Equal(t, 4, c.Length(), "wrong length")

	// validation is still available to callers
	assert.Equal(t, fault.PreviousHashMismatch, c.Validate(wrongPreviousBlock(c)), "validate did not check")
}

func TestHashRecomputedWithHasher(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHasher(ctl)
	h.EXPECT().Hash(gomock.Any()).Return("00genesis").Times(1)

	c, err := chain.New(testDifficulty, chain.PolicyStrict, h)
	assert.Nil(t, err, "chain create error")

	b := &block.Block{
		Index:        1,
		PreviousHash: "00genesis",
		Hash:         "00claimed",
	}
	h.EXPECT().Hash(b).Return("00actual").Times(1)

	assert.Equal(t, fault.HashMismatch, c.Append(b), "mismatch not detected")
}

func TestExtend(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)

	b, err := c.Extend(someTransactions())
	assert.Nil(t, err, "extend error")
	assert.Equal(t, uint64(1), b.Index, "wrong index")
	assert.Equal(t, c.Blocks()[0].Hash, b.PreviousHash, "not linked")
	assert.True(t, blockdigest.MeetsDifficulty(b.Hash, testDifficulty), "not mined")
	assert.Equal(t, b, c.Latest(), "not appended")
}

func TestConcurrentExtendKeepsLinkage(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Extend(someTransactions())
			assert.Nil(t, err, "extend error")
		}()
	}
	wg.Wait()

	blocks := c.Blocks()
	assert.Equal(t, workers+1, len(blocks), "wrong length")
	for i := 1; i < len(blocks); i += 1 {
		assert.Equal(t, blocks[i-1].Hash, blocks[i].PreviousHash, "%d: broken link", i)
		assert.Equal(t, uint64(i), blocks[i].Index, "%d: wrong index", i)
	}
}

// blocks the first Hash call after being armed until released
type gatedHasher struct {
	armed   int32
	started chan struct{}
	release chan struct{}
}

func (g *gatedHasher) Hash(b *block.Block) string {
	if atomic.CompareAndSwapInt32(&g.armed, 1, 0) {
		close(g.started)
		<-g.release
	}
	return hasher.Hash(b)
}

func TestAppendWhileExtendIsMining(t *testing.T) {
	gate := &gatedHasher{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c, err := chain.New(testDifficulty, chain.PolicyStrict, gate)
	if nil != err {
		t.Fatalf("chain create error: %s", err)
	}
	genesis := c.Latest()
	atomic.StoreInt32(&gate.armed, 1)

	type result struct {
		b   *block.Block
		err error
	}
	extended := make(chan result, 1)
	go func() {
		b, err := c.Extend(someTransactions())
		extended <- result{b, err}
	}()
	<-gate.started

	// a block from a peer arrives while the local block is being mined
	received := block.New(genesis, []transaction.Transaction{
		transaction.New("carol", "dave", decimal.New(3, 0)),
	})
	received.Mine(hasher, testDifficulty)

	appended := make(chan error, 1)
	go func() {
		appended <- c.Append(received)
	}()

	select {
	case err := <-appended:
		assert.Nil(t, err, "append error")
	case <-time.After(5 * time.Second):
		close(gate.release)
		t.Fatal("append blocked by mining")
	}

	close(gate.release)
	r := <-extended
	if !assert.Nil(t, r.err, "extend error") {
		t.FailNow()
	}

	assert.Equal(t, 3, c.Length(), "wrong length")
	assert.Equal(t, received.Hash, r.b.PreviousHash, "mined block not rebuilt on the received block")
	assert.Equal(t, uint64(2), r.b.Index, "wrong index")
	assert.Equal(t, r.b, c.Latest(), "not appended")
}

func TestRender(t *testing.T) {
	c := newChain(t, chain.PolicyStrict)
	_, err := c.Extend(someTransactions())
	assert.Nil(t, err, "extend error")

	var buffer bytes.Buffer
	assert.Nil(t, c.Render(&buffer), "render error")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 3, len(lines), "wrong line count")
	assert.Contains(t, lines[1], "#0", "missing genesis index")
	assert.Contains(t, lines[1], "[genesis]", "missing genesis marker")
	assert.Contains(t, lines[2], "txs: 1", "missing transaction count")
	assert.Contains(t, lines[2], block.Short(c.Latest().Hash), "missing short hash")
	assert.NotContains(t, lines[2], "[genesis]", "non genesis marked")
}

func TestParsePolicy(t *testing.T) {
	p, err := chain.ParsePolicy("strict")
	assert.Nil(t, err, "strict error")
	assert.Equal(t, chain.PolicyStrict, p, "wrong policy")

	p, err = chain.ParsePolicy("")
	assert.Nil(t, err, "default error")
	assert.Equal(t, chain.PolicyStrict, p, "default not strict")

	p, err = chain.ParsePolicy("Permissive")
	assert.Nil(t, err, "permissive error")
	assert.Equal(t, chain.PolicyPermissive, p, "wrong policy")
	assert.Equal(t, "permissive", p.String(), "wrong name")

	_, err = chain.ParsePolicy("lax")
	assert.Equal(t, fault.InvalidPolicy, err, "unknown policy accepted")
}
