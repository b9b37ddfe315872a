// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"
)

const listSeparator = "|"

// JoinList - the "|" separated form used inside a block payload
func JoinList(txs []Transaction) string {
	s := make([]string, len(txs))
	for i, tx := range txs {
		s[i] = tx.String()
	}
	return strings.Join(s, listSeparator)
}

// ParseList - decode a "|" separated list, empty entries are skipped
func ParseList(s string) ([]Transaction, error) {
	txs := make([]Transaction, 0)
	for _, item := range strings.Split(s, listSeparator) {
		if "" == item {
			continue
		}
		tx, err := Parse(item)
		if nil != err {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
