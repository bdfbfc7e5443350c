// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// echo the parse of the command-line as JSON, e.g.
//
//   argmap-parse -z 5 -y=6 --msg cool -xvf file.tgz -n -555 one two -- three -z 0
package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/argmap"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program, arguments, options := argmap.ParseOS()

	reply := map[string]interface{}{
		"arguments": arguments,
		"options":   options,
	}

	b, err := json.Marshal(reply)
	if nil != err {
		exitwithstatus.Message("%s: incorrect json marshal: %s", program, err)
	}

	fmt.Printf("%s\n", b)
}
