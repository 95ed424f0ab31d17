// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os/exec"
	"strings"
)

// prefix for the agent's cache-id so frost-cli entries do not
// collide with other users of the same agent
const passwordTag = "frost-cli:password:"

// run an external password agent, e.g. gnome-ssh-askpass
//
// the agent protocol is the ssh-askpass one:
//
//	agent [--clear] --confirm=1 cache-id error-message prompt description
//
// the password is whatever the agent writes to stdout, with any
// trailing newline removed
func passwordFromAgent(name string, title string, agent string, clear bool) (string, error) {

	arguments := []string{}
	if clear {
		// force the agent to forget a previously cached password
		arguments = append(arguments, "--clear")
	}
	arguments = append(arguments,
		"--confirm=1",
		passwordTag+name,
		"", // no error message
		"Password for: "+name,
		"Enter password to: "+title,
	)

	out, err := exec.Command(agent, arguments...).Output()
	if nil != err {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
