// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues between the ledger and its subscribers
//
// the broadcast queue carries committed record announcements from the
// ledger to the ZeroMQ publisher; duplicate announcements within the
// cache window are suppressed
package messagebus
