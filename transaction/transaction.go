// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/tinychaind/fault"
)

// delimiters of the textual form
const (
	arrow = "->"
	colon = ":"
)

// Transaction - a transfer of an amount between two names
type Transaction struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// New - create a transaction
func New(from string, to string, amount decimal.Decimal) Transaction {
	return Transaction{
		From:   from,
		To:     to,
		Amount: amount,
	}
}

// String - the textual form, amount is normalised
func (tx Transaction) String() string {
	return tx.From + arrow + tx.To + colon + tx.Amount.String()
}

// Equal - compare amounts numerically rather than by representation
func (tx Transaction) Equal(other Transaction) bool {
	return tx.From == other.From &&
		tx.To == other.To &&
		tx.Amount.Equal(other.Amount)
}

// Parse - decode "From->To:Amount"
//
// only the number of fields and the amount are checked
func Parse(s string) (Transaction, error) {
	parts := split(s)
	if 3 != len(parts) {
		return Transaction{}, fault.InvalidTransactionFormat
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if nil != err {
		return Transaction{}, fault.InvalidAmount
	}

	return New(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), amount), nil
}

// split on either delimiter, keeping empty fields
func split(s string) []string {
	return strings.Split(strings.Replace(s, arrow, colon, -1), colon)
}
