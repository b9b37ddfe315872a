// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

// State - connection life cycle, Closed is terminal
type State int

// all possible states
const (
	Connecting State = iota
	Open
	Closed
)

// String - state name
func (s State) String() string {
	switch s {
	case Connecting:
		return "Connecting"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "*Unknown*"
	}
}
