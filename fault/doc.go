// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error so callers can compare
// with == instead of matching message text. Errors are grouped into
// classes (authorization, not found, stale, …) and the IsErr…
// predicates let the RPC layer map a class to a response without
// knowing the individual error.
package fault
