// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

// Listener - start serving connections on the configured addresses
//
// Serve returns after spawning the accept loops, it does not block
type Listener interface {
	Serve() error
}
