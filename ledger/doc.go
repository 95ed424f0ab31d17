// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the append only record store
//
// Two chains of records are kept, temperature checkpoints and wrapped
// key entries.  Ids are dense and ascending within a chain: the first
// record of a chain is id zero and every append is assigned exactly
// one more than the previous append.  Records are never deleted; the
// only mutation is the key entry update which replaces the sealed
// payload of an existing entry in place.
//
// Stored form in the ledger database, keys are big endian:
//
//	id(8) -> createdAt(8) ++ updatedAt(8) ++ handle(32) ++ packed record
//
// The per recorder index is derived data in the index database and is
// rebuilt from the chains by Reindex whenever the index database
// version is stale:
//
//	recorder(20)             -> count(8)
//	recorder(20) ++ n(8)     -> id(8)
//
// Appends and updates are serialised by a single writer lock and
// commit through one transaction spanning both databases.  Queries do
// not take the lock, they read the last committed state through
// iterators so a partially staged write is never observable.
package ledger
