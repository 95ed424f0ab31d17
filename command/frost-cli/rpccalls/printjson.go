// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace output for verbose mode, showing each request and reply
// as it crosses the RPC connection
func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" != title {
		fmt.Fprintf(client.handle, "%s:\n", title)
	}
	fmt.Fprintf(client.handle, "%s\n", b)
	return nil
}
