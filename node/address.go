// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"net"
	"strings"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/tinychaind/fault"
)

// ParseAddress - convert a peer address to host:port form
//
// accepts either "host:port" or a multiaddr of the form
// "/ip4/<address>/tcp/<port>" or "/ip6/<address>/tcp/<port>"
func ParseAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if "" == address {
		return "", fault.InvalidPeerAddress
	}

	if strings.HasPrefix(address, "/") {
		return fromMultiaddr(address)
	}

	host, port, err := net.SplitHostPort(address)
	if nil != err || "" == port {
		return "", fault.InvalidPeerAddress
	}
	return net.JoinHostPort(host, port), nil
}

func fromMultiaddr(address string) (string, error) {
	maAddr, err := ma.NewMultiaddr(address)
	if nil != err {
		return "", fault.InvalidPeerAddress
	}

	host, err := maAddr.ValueForProtocol(ma.P_IP4)
	if nil != err {
		host, err = maAddr.ValueForProtocol(ma.P_IP6)
		if nil != err {
			return "", fault.InvalidPeerAddress
		}
	}

	port, err := maAddr.ValueForProtocol(ma.P_TCP)
	if nil != err {
		return "", fault.InvalidPeerAddress
	}

	return net.JoinHostPort(host, port), nil
}
