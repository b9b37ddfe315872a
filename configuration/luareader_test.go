// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tinychaind/configuration"
	"github.com/bitmark-inc/tinychaind/fault"
)

type nodeSection struct {
	Listen     string   `gluamapper:"listen"`
	Connect    []string `gluamapper:"connect"`
	Miner      bool     `gluamapper:"miner"`
	Difficulty int      `gluamapper:"difficulty"`
	AcceptRate float64  `gluamapper:"accept_rate"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	PidFile       string            `gluamapper:"pidfile"`
	Node          nodeSection       `gluamapper:"node"`
	Levels        map[string]string `gluamapper:"levels"`
}

const sample = `
local data_directory = arg[0] and "data" or "none"

return {
    data_directory = data_directory,
    node = {
        listen = "127.0.0.1:2136",
        connect = {
            "127.0.0.1:2137",
            "/ip4/127.0.0.1/tcp/2138",
        },
        miner = true,
        difficulty = 3,
        accept_rate = 2.5,
    },
    levels = {
        main = "info",
        DEFAULT = "error",
    },
}
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if !assert.Nil(t, err, "temporary directory error") {
		t.FailNow()
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(sample), 0600)
	if !assert.Nil(t, err, "write error") {
		t.FailNow()
	}

	config := testConfiguration{
		PidFile: "default.pid",
	}
	err = configuration.ParseConfigurationFile(fileName, &config)
	if !assert.Nil(t, err, "parse error") {
		t.FailNow()
	}

	assert.Equal(t, "data", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "default.pid", config.PidFile, "default overwritten")
	assert.Equal(t, "127.0.0.1:2136", config.Node.Listen, "wrong listen")
	assert.Equal(t, []string{"127.0.0.1:2137", "/ip4/127.0.0.1/tcp/2138"}, config.Node.Connect, "wrong connect")
	assert.True(t, config.Node.Miner, "wrong miner")
	assert.Equal(t, 3, config.Node.Difficulty, "wrong difficulty")
	assert.Equal(t, 2.5, config.Node.AcceptRate, "wrong accept rate")
	assert.Equal(t, "info", config.Levels["main"], "wrong main level")
	assert.Equal(t, "error", config.Levels["DEFAULT"], "wrong default level")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("/does/not/exist.conf", &config)
	assert.NotNil(t, err, "missing file accepted")
}

// write a chunk to a temporary file and parse it
func parseChunk(t *testing.T, chunk string, config interface{}) error {
	dir, err := ioutil.TempDir("", "configuration")
	if !assert.Nil(t, err, "temporary directory error") {
		t.FailNow()
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "chunk.conf")
	err = ioutil.WriteFile(fileName, []byte(chunk), 0600)
	if !assert.Nil(t, err, "write error") {
		t.FailNow()
	}
	return configuration.ParseConfigurationFile(fileName, config)
}

func TestParseConfigurationEnvironment(t *testing.T) {
	config := testConfiguration{}
	err := parseChunk(t, `return { pidfile = os.getenv("HOME") and "x.pid" or "y.pid" }`, &config)
	assert.Nil(t, err, "parse error")
	assert.Contains(t, []string{"x.pid", "y.pid"}, config.PidFile, "wrong pid file")
}

func TestParseConfigurationNotTable(t *testing.T) {
	config := testConfiguration{}

	err := parseChunk(t, `local x = 1`, &config)
	assert.Equal(t, fault.InvalidConfiguration, err, "no return accepted")

	err = parseChunk(t, `return "text"`, &config)
	assert.Equal(t, fault.InvalidConfiguration, err, "string accepted")
}

func TestParseConfigurationSyntaxError(t *testing.T) {
	config := testConfiguration{}
	err := parseChunk(t, `return {`, &config)
	assert.NotNil(t, err, "syntax error accepted")
}
