// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/water4699/frost-key-chain/fault"
)

// test that salt marshals and restores to the same value
func TestSaltMarshalText(t *testing.T) {

	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}

	text, err := salt.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	recovered := new(Salt)
	err = recovered.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	if *recovered != *salt {
		t.Fatalf("different, original: %s  recovered: %s", salt, recovered)
	}
}

// a truncated hex string must be rejected
func TestSaltUnmarshalTextInvalid(t *testing.T) {

	salt := new(Salt)

	err := salt.UnmarshalText([]byte("0badc0de"))
	if fault.InvalidSalt != err {
		t.Fatalf("unmarshal error: %q  expected: %q", err, fault.InvalidSalt)
	}

	err = salt.UnmarshalText([]byte("not hex at all!!"))
	if nil == err {
		t.Fatalf("unmarshal accepted non hex input")
	}
}

// two salts from the random source must differ
func TestMakeSaltUnique(t *testing.T) {

	one, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}
	two, err := MakeSalt()
	if nil != err {
		t.Fatalf("make salt error: %s", err)
	}

	if *one == *two {
		t.Fatalf("duplicate salt: %s", one)
	}
}
