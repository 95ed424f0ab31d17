// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/water4699/frost-key-chain/storage/mocks"
)

// log file directory
const (
	logDirectory = "testing"
)

var (
	testDB       *leveldb.DB
	defaultKey   = []byte("key")
	defaultValue = []byte{'a'}
)

func TestMain(m *testing.M) {
	_ = os.Mkdir(logDirectory, 0o700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	dir, err := os.MkdirTemp("", "access-test")
	if nil != err {
		os.Exit(1)
	}

	testDB, err = leveldb.OpenFile(dir, nil)
	if nil != err {
		os.RemoveAll(dir)
		os.Exit(1)
	}

	rc := m.Run()

	testDB.Close()
	os.RemoveAll(dir)
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// each test gets a fresh batch over the shared database
func testAccess(mockCache *mocks.MockCache) Access {
	return newDA(testDB, new(leveldb.Batch), mockCache)
}

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

// a cache that accepts anything, for tests not watching cache calls
func anyMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	mc, ctl := newMockCache(t)
	mc.EXPECT().Get(gomock.Any()).Return([]byte{}, false).AnyTimes()
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	return mc, ctl
}

func TestBeginIsExclusive(t *testing.T) {
	mc, ctl := anyMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	assert.Nil(t, da.Begin(), "first Begin must succeed")
	assert.NotNil(t, da.Begin(), "second Begin must fail")

	// commit alone does not release the batch
	assert.Nil(t, da.Commit(), "wrong Commit")
	assert.NotNil(t, da.Begin(), "Begin after Commit must still fail")

	// only abort does
	da.Abort()
	assert.Nil(t, da.Begin(), "Begin after Abort must succeed")
}

func TestInUseFollowsBeginAndAbort(t *testing.T) {
	mc, ctl := anyMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	assert.False(t, da.InUse(), "new access must be idle")
	_ = da.Begin()
	assert.True(t, da.InUse(), "Begin must mark in use")
	da.Abort()
	assert.False(t, da.InUse(), "Abort must mark idle")
}

func TestAbortDiscardsPendingWrites(t *testing.T) {
	mc, ctl := anyMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	_ = da.Begin()
	da.Put(defaultKey, defaultValue)
	assert.NotEqual(t, 0, len(da.DumpTx()), "batch must hold the put")

	da.Abort()
	assert.Equal(t, 0, len(da.DumpTx()), "Abort must reset the batch")
}

func TestCommitWritesToDatabase(t *testing.T) {
	mc, ctl := anyMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	key := []byte("commit-key")
	value := []byte("committed")

	_ = da.Begin()
	da.Put(key, value)
	assert.Nil(t, da.Commit(), "wrong Commit")
	da.Abort()

	// cache is empty so this read must come from the database
	actual, err := da.Get(key)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, value, actual, "value not committed")

	has, err := da.Has(key)
	assert.Nil(t, err, "wrong Has")
	assert.True(t, has, "key not committed")
}

func TestPutAndDeleteAreCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	mc.EXPECT().Set(dbPut, string(defaultKey), defaultValue).Times(1)
	mc.EXPECT().Set(dbDelete, string(defaultKey), []byte{}).Times(1)

	_ = da.Begin()
	da.Put(defaultKey, defaultValue)
	da.Delete(defaultKey)
}

func TestGetPrefersCachedValue(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()
	da := testAccess(mc)

	pending := []byte("pending")
	mc.EXPECT().Set(dbPut, string(defaultKey), pending).Times(1)
	mc.EXPECT().Get(string(defaultKey)).Return(pending, true).Times(2)

	_ = da.Begin()
	da.Put(defaultKey, pending)

	actual, err := da.Get(defaultKey)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, pending, actual, "pending write not read back")

	has, err := da.Has(defaultKey)
	assert.Nil(t, err, "wrong Has")
	assert.True(t, has, "pending write not detected")
}
