// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration scripts
//
// a configuration file is a Lua script that returns a table; the
// table is mapped onto a Go structure using "gluamapper" field tags.
// the full Lua base library is open so a script can call getenv,
// read auxiliary files or compute values, and the global arg table
// lets it build paths relative to its own location.
package configuration
