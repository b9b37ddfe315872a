// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/tinychaind/chain"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/wire"
)

// defaults
const (
	DefaultListen             = ":2136"
	DefaultDifficulty         = 2
	DefaultAutoMineInterval   = "10s"
	DefaultDialTimeout        = "5s"
	DefaultWriteTimeout       = "5s"
	DefaultMaximumConnections = 125
	DefaultSeenExpiry         = "10m"
)

// Configuration - the node section of the configuration file
type Configuration struct {
	Listen             string   `gluamapper:"listen" json:"listen"`
	Connect            []string `gluamapper:"connect" json:"connect"`
	Miner              bool     `gluamapper:"miner" json:"miner"`
	Difficulty         int      `gluamapper:"difficulty" json:"difficulty"`
	Policy             string   `gluamapper:"policy" json:"policy"`
	AutoMineInterval   string   `gluamapper:"auto_mine_interval" json:"auto_mine_interval"`
	DialTimeout        string   `gluamapper:"dial_timeout" json:"dial_timeout"`
	WriteTimeout       string   `gluamapper:"write_timeout" json:"write_timeout"`
	MaximumMessageSize int      `gluamapper:"maximum_message_size" json:"maximum_message_size"`
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	AcceptRate         float64  `gluamapper:"accept_rate" json:"accept_rate"`
	AcceptBurst        int      `gluamapper:"accept_burst" json:"accept_burst"`
	Relay              bool     `gluamapper:"relay" json:"relay"`
	SeenExpiry         string   `gluamapper:"seen_expiry" json:"seen_expiry"`
}

// DefaultConfiguration - values used for anything not in the file
func DefaultConfiguration() Configuration {
	return Configuration{
		Listen:             DefaultListen,
		Connect:            []string{},
		Miner:              false,
		Difficulty:         DefaultDifficulty,
		Policy:             chain.PolicyStrict.String(),
		AutoMineInterval:   DefaultAutoMineInterval,
		DialTimeout:        DefaultDialTimeout,
		WriteTimeout:       DefaultWriteTimeout,
		MaximumMessageSize: wire.DefaultMaximumLength,
		MaximumConnections: DefaultMaximumConnections,
		AcceptRate:         0, // unlimited
		AcceptBurst:        1,
		Relay:              true,
		SeenExpiry:         DefaultSeenExpiry,
	}
}

// validated form of the configuration
type settings struct {
	listen             string
	miner              bool
	difficulty         int
	policy             chain.Policy
	autoMineInterval   time.Duration
	dialTimeout        time.Duration
	writeTimeout       time.Duration
	maximumMessageSize int
	maximumConnections int
	acceptRate         float64
	acceptBurst        int
	relay              bool
	seenExpiry         time.Duration
}

func (conf *Configuration) settings() (*settings, error) {
	if "" == conf.Listen {
		return nil, fault.MissingListenAddress
	}
	if conf.Difficulty < 0 {
		return nil, fault.InvalidDifficulty
	}

	policy, err := chain.ParsePolicy(conf.Policy)
	if nil != err {
		return nil, err
	}

	s := &settings{
		listen:             conf.Listen,
		miner:              conf.Miner,
		difficulty:         conf.Difficulty,
		policy:             policy,
		maximumMessageSize: conf.MaximumMessageSize,
		maximumConnections: conf.MaximumConnections,
		acceptRate:         conf.AcceptRate,
		acceptBurst:        conf.AcceptBurst,
		relay:              conf.Relay,
	}

	// a zero timeout disables it, the interval and expiry must be positive
	durations := []struct {
		text         string
		defaultValue string
		value        *time.Duration
		positive     bool
	}{
		{conf.AutoMineInterval, DefaultAutoMineInterval, &s.autoMineInterval, true},
		{conf.DialTimeout, DefaultDialTimeout, &s.dialTimeout, false},
		{conf.WriteTimeout, DefaultWriteTimeout, &s.writeTimeout, false},
		{conf.SeenExpiry, DefaultSeenExpiry, &s.seenExpiry, true},
	}
	for _, d := range durations {
		text := d.text
		if "" == text {
			text = d.defaultValue
		}
		*d.value, err = time.ParseDuration(text)
		if nil != err || *d.value < 0 || (d.positive && 0 == *d.value) {
			return nil, fault.InvalidDuration
		}
	}

	if s.maximumMessageSize <= 0 {
		s.maximumMessageSize = wire.DefaultMaximumLength
	}
	if s.acceptBurst < 1 {
		s.acceptBurst = 1
	}

	return s, nil
}
