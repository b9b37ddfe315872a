// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tinychaind/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative not joined")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute changed")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./x/../log"), "not cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if !assert.Nil(t, err, "temporary directory error") {
		t.FailNow()
	}
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(nested), "create error")
	assert.True(t, util.EnsureFileExists(nested), "not created")
	assert.Nil(t, util.EnsureDirectory(nested), "existing directory error")

	file := filepath.Join(dir, "file")
	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "write error")
	assert.NotNil(t, util.EnsureDirectory(file), "file accepted as directory")
}
