// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tinychaind/transaction"
)

// Length - number of hex characters in a digest
const Length = 2 * 32

// TimestampFormat - round trip safe text form of block times
const TimestampFormat = time.RFC3339Nano

const fieldSeparator = ";"

// Record - canonical text of the hashed fields
func Record(index uint64, createdAt time.Time, previousHash string, nonce int64, txs []transaction.Transaction) string {
	return strings.Join([]string{
		strconv.FormatUint(index, 10),
		createdAt.UTC().Format(TimestampFormat),
		previousHash,
		strconv.FormatInt(nonce, 10),
		transaction.JoinList(txs),
	}, fieldSeparator)
}

// Digest - hex SHA3-256 of the canonical record
func Digest(index uint64, createdAt time.Time, previousHash string, nonce int64, txs []transaction.Transaction) string {
	digest := sha3.Sum256([]byte(Record(index, createdAt, previousHash, nonce, txs)))
	return hex.EncodeToString(digest[:])
}

// LeadingZeros - count of leading '0' characters
func LeadingZeros(hash string) int {
	n := 0
	for n < len(hash) && '0' == hash[n] {
		n += 1
	}
	return n
}

// MeetsDifficulty - true if hash has at least difficulty leading zeros
func MeetsDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	return LeadingZeros(hash) >= difficulty
}
