// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/water4699/frost-key-chain/fault"
)

var (
	errAuthorizationOne = fault.AuthorizationError("authorization one")
	errAuthorizationTwo = fault.AuthorizationError("authorization two")
	errExistsOne        = fault.ExistsError("exists one")
	errExistsTwo        = fault.ExistsError("exists two")
	errInvalidOne       = fault.InvalidError("invalid one")
	errInvalidTwo       = fault.InvalidError("invalid two")
	errLengthOne        = fault.LengthError("length one")
	errLengthTwo        = fault.LengthError("length two")
	errNotFoundOne      = fault.NotFoundError("not found one")
	errNotFoundTwo      = fault.NotFoundError("not found two")
	errNotOwnerOne      = fault.NotOwnerError("not owner one")
	errNotOwnerTwo      = fault.NotOwnerError("not owner two")
	errProcessOne       = fault.ProcessError("process one")
	errProcessTwo       = fault.ProcessError("process two")
	errRecordOne        = fault.RecordError("record one")
	errRecordTwo        = fault.RecordError("record two")
	errStaleOne         = fault.StaleError("stale one")
	errStaleTwo         = fault.StaleError("stale two")
)

// test that the various error classes stay distinguishable
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorization bool
		exists        bool
		invalid       bool
		length        bool
		notFound      bool
		notOwner      bool
		process       bool
		record        bool
		stale         bool
	}{
		{errAuthorizationOne, true, false, false, false, false, false, false, false, false},
		{errAuthorizationTwo, true, false, false, false, false, false, false, false, false},
		{errExistsOne, false, true, false, false, false, false, false, false, false},
		{errExistsTwo, false, true, false, false, false, false, false, false, false},
		{errInvalidOne, false, false, true, false, false, false, false, false, false},
		{errInvalidTwo, false, false, true, false, false, false, false, false, false},
		{errLengthOne, false, false, false, true, false, false, false, false, false},
		{errLengthTwo, false, false, false, true, false, false, false, false, false},
		{errNotFoundOne, false, false, false, false, true, false, false, false, false},
		{errNotFoundTwo, false, false, false, false, true, false, false, false, false},
		{errNotOwnerOne, false, false, false, false, false, true, false, false, false},
		{errNotOwnerTwo, false, false, false, false, false, true, false, false, false},
		{errProcessOne, false, false, false, false, false, false, true, false, false},
		{errProcessTwo, false, false, false, false, false, false, true, false, false},
		{errRecordOne, false, false, false, false, false, false, false, true, false},
		{errRecordTwo, false, false, false, false, false, false, false, true, false},
		{errStaleOne, false, false, false, false, false, false, false, false, true},
		{errStaleTwo, false, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorization(err) != e.authorization {
			t.Errorf("%d: expected 'authorization' == %v for err = %v", i, e.authorization, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrNotOwner(err) != e.notOwner {
			t.Errorf("%d: expected 'not owner' == %v for err = %v", i, e.notOwner, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrStale(err) != e.stale {
			t.Errorf("%d: expected 'stale' == %v for err = %v", i, e.stale, err)
		}
	}
}
