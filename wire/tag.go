// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
)

// TagLength - bytes in a message tag
const TagLength = 4

// Tag - four character message type
type Tag string

// recognised message types
const (
	TagTransaction Tag = "TX  "
	TagBlock       Tag = "BLCK"
)

// NewTag - pad with spaces or truncate to exactly four characters
func NewTag(s string) Tag {
	if len(s) >= TagLength {
		return Tag(s[:TagLength])
	}
	return Tag(s + strings.Repeat(" ", TagLength-len(s)))
}

// String - tag without padding, for logging
func (t Tag) String() string {
	return strings.TrimRight(string(t), " ")
}
