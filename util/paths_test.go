// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/water4699/frost-key-chain/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testItems := []struct {
		directory string
		filePath  string
		expected  string
	}{
		{"/var/lib/frostkeyd", "ledger.leveldb", "/var/lib/frostkeyd/ledger.leveldb"},
		{"/var/lib/frostkeyd", "/etc/frostkeyd.conf", "/etc/frostkeyd.conf"},
		{"/var/lib/frostkeyd", "./log/frostkeyd.log", "/var/lib/frostkeyd/log/frostkeyd.log"},
		{"/var/lib/frostkeyd", "../shared/rpc.crt", "/var/lib/shared/rpc.crt"},
		{"/var/lib/frostkeyd/", "//etc//frostkeyd.conf", "/etc/frostkeyd.conf"},
	}
	for i, item := range testItems {
		actual := util.EnsureAbsolute(item.directory, item.filePath)
		if item.expected != actual {
			t.Errorf("%d: EnsureAbsolute(%q, %q) expected: %q  actual: %q",
				i, item.directory, item.filePath, item.expected, actual)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := os.MkdirTemp("", "paths-test")
	if nil != err {
		t.Fatalf("MkdirTemp error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "rpc.key")
	err = os.WriteFile(fileName, []byte("key data\n"), 0o600)
	if nil != err {
		t.Fatalf("WriteFile error: %s", err)
	}

	if !util.EnsureFileExists(fileName) {
		t.Errorf("existing file not detected: %q", fileName)
	}
	if util.EnsureFileExists(filepath.Join(dir, "no-such.key")) {
		t.Errorf("missing file detected")
	}

	// a directory is not a file
	if util.EnsureFileExists(dir) {
		t.Errorf("directory detected as file: %q", dir)
	}
}
