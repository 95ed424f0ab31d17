// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic runtime usage report, only started with --memory-stats
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("heap: %d M  in use: %d M  OS virtual: %d M",
			m.Alloc/mega, m.HeapInuse/mega, m.Sys/mega)
		log.Infof("cumulative: %d M  gc cycles: %d  pause total: %s",
			m.TotalAlloc/mega, m.NumGC, time.Duration(m.PauseTotalNs))
		log.Infof("goroutines: %d", runtime.NumGoroutine())

		time.Sleep(statsDelay)
	}
}
