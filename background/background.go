// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - any type that implements Run can be started as a
// background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for stopping the background processes
type T struct {
	sync.WaitGroup
	s []chan struct{}
}

// Start - start up a set of background processes
// all with the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]chan struct{}, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.s[i] = shutdown
		register.Add(1)
		go func(p Process, shutdown <-chan struct{}) {
			p.Run(args, shutdown)
			register.Done()
		}(p, shutdown)
	}
	return register
}

// Stop - stop a set of background processes
// and wait for them to terminate
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.s {
		close(shutdown)
	}

	// wait for all shutdowns to complete
	t.Wait()
}
