// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/ledger"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

type tagType byte

// record types in the save file
const (
	taggedBOF         tagType = iota
	taggedEOF         tagType = iota
	taggedCiphertext  tagType = iota
	taggedGrant       tagType = iota
	taggedTemperature tagType = iota
	taggedKey         tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("frost-records v1.0")

// key sizes to split the saved key/value pairs
const (
	ciphertextKeySize = vault.HandleSize
	grantKeySize      = vault.HandleSize + account.AddressSize
	recordKeySize     = 8
)

// save the vault pools and both record chains to a file
//
// record format:
//   tag                       1 byte
//   big endian data length    2 bytes
//   key ++ value              n bytes
//
// ciphertexts come first so restored records never reference a
// payload that is not registered yet
func saveBinaryRecords(filename string) error {

	fh, err := os.Create(filename)
	if nil != err {
		return err
	}
	defer fh.Close()

	err = writeRecord(fh, taggedBOF, bofData)
	if nil != err {
		return err
	}

	for _, p := range []struct {
		tag  tagType
		pool storage.Handle
	}{
		{taggedCiphertext, storage.Pool.Ciphertexts},
		{taggedGrant, storage.Pool.Grants},
		{taggedTemperature, storage.Pool.Temperatures},
		{taggedKey, storage.Pool.KeyEntries},
	} {
		n := 0
		tag := p.tag
		err = p.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
			if n%100 == 0 {
				fmt.Printf("%d", n)
			} else {
				fmt.Printf(".")
			}
			n += 1
			buffer := make([]byte, 0, len(key)+len(value))
			buffer = append(buffer, key...)
			buffer = append(buffer, value...)
			return writeRecord(fh, tag, buffer)
		})
		if nil != err {
			return err
		}
	}

	err = writeRecord(fh, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}
	fmt.Printf("\n")
	return nil
}

// restore records from a file
// record format: (as save above)
func restoreBinaryRecords(filename string, svc *vault.LocalService) error {
	fh, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer fh.Close()

	l := ledger.Get()
	if 0 != l.TemperatureCount() || 0 != l.KeyCount() {
		return fmt.Errorf("not overwriting existing data")
	}

	// must have BOF record first
	tag, data, err := readRecord(fh)
	if nil != err {
		return err
	}
	if taggedBOF != tag {
		return fmt.Errorf("expected BOF: %d but read: %d", taggedBOF, tag)
	}
	if !bytes.Equal(bofData, data) {
		return fmt.Errorf("expected BOF: %q but read: %q", bofData, data)
	}

	n := 0
restore_loop:
	for {
		tag, data, err := readRecord(fh)
		if err == io.EOF {
			break restore_loop
		} else if nil != err {
			return err
		}

		if n%100 == 0 {
			fmt.Printf("%d", n)
		} else {
			fmt.Printf(".")
		}
		n += 1

		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedCiphertext:
			err = restorePoolEntry(data, ciphertextKeySize, svc.RestoreCiphertext)
			if nil != err {
				return err
			}

		case taggedGrant:
			err = restorePoolEntry(data, grantKeySize, svc.RestoreGrant)
			if nil != err {
				return err
			}

		case taggedTemperature, taggedKey:
			if len(data) <= recordKeySize {
				return fmt.Errorf("record too short: %d", len(data))
			}
			id := binary.BigEndian.Uint64(data[:recordKeySize])
			restorer, err := ledger.NewRestorer(id, data[recordKeySize:])
			if nil != err {
				return err
			}
			if nil == restorer {
				return fmt.Errorf("read invalid record: id: %d", id)
			}
			err = restorer.Restore()
			if nil != err {
				return err
			}

		default:
			return fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}
	fmt.Printf("\n")
	return nil
}

// re-insert one saved pool entry in its own transaction
func restorePoolEntry(data []byte, keySize int, restore func(storage.Transaction, []byte, []byte) error) error {
	if len(data) <= keySize {
		return fmt.Errorf("record too short: %d", len(data))
	}
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = restore(trx, data[:keySize], data[keySize:])
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// write a tagged record
func writeRecord(fh *os.File, tag tagType, data []byte) error {

	if len(data) > 65535 {
		return fmt.Errorf("write record data length: %d > 65535", len(data))
	}

	_, err := fh.Write([]byte{byte(tag)})
	if nil != err {
		return err
	}

	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(data)))
	_, err = fh.Write(count)
	if nil != err {
		return err
	}
	_, err = fh.Write(data)
	return err
}

func readRecord(fh *os.File) (tagType, []byte, error) {

	tag := make([]byte, 1)
	n, err := fh.Read(tag)
	if nil != err {
		return taggedEOF, []byte{}, err
	}
	if 1 != n {
		return taggedEOF, []byte{}, fmt.Errorf("read record tag: read: %d, expected: %d", n, 1)
	}

	countBuffer := make([]byte, 2)
	n, err = fh.Read(countBuffer)
	if nil != err {
		return taggedEOF, []byte{}, err
	}
	if 2 != n {
		return taggedEOF, []byte{}, fmt.Errorf("read record count: read: %d, expected: %d", n, 2)
	}

	count := int(binary.BigEndian.Uint16(countBuffer))

	if count > 0 {
		buffer := make([]byte, count)
		n, err := io.ReadFull(fh, buffer)
		if nil != err {
			return taggedEOF, []byte{}, err
		}
		if count != n {
			return taggedEOF, []byte{}, fmt.Errorf("read record data: read: %d, expected: %d", n, count)
		}
		return tagType(tag[0]), buffer, nil
	}
	return tagType(tag[0]), []byte{}, nil
}
