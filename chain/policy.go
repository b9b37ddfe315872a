// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"

	"github.com/bitmark-inc/tinychaind/fault"
)

// Policy - how a block is checked before append
type Policy int

// all possible policies
const (
	// PolicyStrict - linkage, difficulty and hash are all verified
	PolicyStrict Policy = iota

	// PolicyPermissive - append unconditionally, no verification at all
	PolicyPermissive
)

// names used in the configuration file
const (
	strictName     = "strict"
	permissiveName = "permissive"
)

// ParsePolicy - convert a configuration name
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", strictName:
		return PolicyStrict, nil
	case permissiveName:
		return PolicyPermissive, nil
	default:
		return PolicyStrict, fault.InvalidPolicy
	}
}

// String - policy name
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return strictName
	case PolicyPermissive:
		return permissiveName
	default:
		return "*unknown*"
	}
}
