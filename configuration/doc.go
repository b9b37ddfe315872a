// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is an ordinary Lua chunk that must end by returning a
// table; os.getenv and the rest of base Lua are available so values
// can be computed.  The global "arg" table holds the file name in
// arg[0].
package configuration
