// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains two LevelDB databases, each split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// The ledger database is authoritative, the index database is derived
// from it and can be dropped and rebuilt by a reindex scan at any
// time.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++          = concatenation of byte data
// 3. record id   = big endian uint64 (8 bytes), dense from zero per pool
// 4. count       = successive index value as big endian uint64 (8 bytes)
// 5. recorder    = twenty byte keccak address of a secp256k1 public key
// 6. handle      = vault ciphertext handle as 32 byte Keccak-256(data)
// 7. timestamp   = unix seconds as big endian uint64 (8 bytes)
// 8. *others*    = byte values of various length
//
// Records (database: ledger):
//
//   T ++ record id           - temperature checkpoints
//                              data: packed temperature data
//   K ++ record id           - key chain entries
//                              data: packed key data
//
// Vault (database: ledger):
//
//   C ++ handle              - registered ciphertexts
//                              data: packed registration data
//   G ++ handle ++ recorder  - decryption access granted for a ciphertext
//                              data: timestamp of the grant
//
// note: grants stay in the ledger database since grants on payloads
// that were later replaced cannot be derived from the current records
//
// Owner index (database: index):
//
//   N ++ recorder            - next count value to use for appending to owned temperature checkpoints
//                              data: count
//   L ++ recorder ++ count   - list of owned temperature checkpoints
//                              data: record id
//   P ++ recorder            - next count value to use for appending to owned key entries
//                              data: count
//   Q ++ recorder ++ count   - list of owned key entries
//                              data: record id
//
// Testing (database: index):
//
//   Z ++ key                 - testing data
package storage
