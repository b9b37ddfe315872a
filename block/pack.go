// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/tinychaind/blockdigest"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/transaction"
)

const (
	fieldSeparator = ";"
	fieldCount     = 5
)

// Pack - the text payload of a "BLCK" message
func (b *Block) Pack() []byte {
	return []byte(blockdigest.Record(b.Index, b.CreatedAt, b.PreviousHash, b.Nonce, b.Transactions))
}

// Unpack - decode a "BLCK" payload, the hash is left blank
func Unpack(payload []byte) (*Block, error) {
	fields := strings.SplitN(string(payload), fieldSeparator, fieldCount)
	if len(fields) < fieldCount {
		return nil, fault.InvalidBlockFormat
	}

	index, err := strconv.ParseUint(fields[0], 10, 64)
	if nil != err {
		return nil, fault.InvalidIndex
	}

	createdAt, err := time.Parse(blockdigest.TimestampFormat, fields[1])
	if nil != err {
		return nil, fault.InvalidTimestamp
	}

	nonce, err := strconv.ParseInt(fields[3], 10, 64)
	if nil != err {
		return nil, fault.InvalidNonce
	}

	txs, err := transaction.ParseList(fields[4])
	if nil != err {
		return nil, err
	}

	b := &Block{
		Index:        index,
		CreatedAt:    createdAt.UTC(),
		PreviousHash: fields[2],
		Nonce:        nonce,
		Transactions: txs,
	}
	return b, nil
}
