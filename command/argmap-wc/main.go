// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/argmap"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program, arguments, options := argmap.New().
		Booleans([]string{"help", "version", "lines", "words", "bytes"}).
		Alias("h", "help").
		Alias("V", "version").
		Alias("l", "lines").
		Alias("w", "words").
		Alias("c", "bytes").
		Alias("i", "infile").
		ParseOS()

	if _, ok := options["help"]; ok {
		exitwithstatus.Message("usage: %s [--help] [--version] [--debug=LEVEL] [--lines] [--words] [--bytes] [--infile=FILE] [FILE]", program)
	}

	if _, ok := options["version"]; ok {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	debugLevel := "critical"
	if len(options["debug"]) > 0 {
		debugLevel = options["debug"][0]
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "argmap-wc.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: debugLevel,
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")

	_, showLines := options["lines"]
	_, showWords := options["words"]
	_, showBytes := options["bytes"]
	if !showLines && !showWords && !showBytes {
		showLines = true
		showWords = true
		showBytes = true
	}

	// --infile wins, then the first positional argument, then stdin
	infile := "-"
	if len(options["infile"]) > 0 {
		infile = options["infile"][0]
	} else if len(arguments) > 0 {
		infile = arguments[0]
	}

	var in io.Reader = os.Stdin
	if "-" != infile {
		f, err := os.Open(infile)
		if nil != err {
			exitwithstatus.Message("%s: open error: %s", program, err)
		}
		defer f.Close()
		in = f
	}
	log.Infof("counting from: %q", infile)

	lineCount, wordCount, byteCount, err := count(in)
	if nil != err {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}
	log.Infof("lines: %d  words: %d  bytes: %d", lineCount, wordCount, byteCount)

	out := ""
	if showLines {
		out += fmt.Sprintf("%4d ", lineCount)
	}
	if showWords {
		out += fmt.Sprintf("%4d ", wordCount)
	}
	if showBytes {
		out += fmt.Sprintf("%4d ", byteCount)
	}
	fmt.Println(strings.TrimRight(out, " "))
}

// single pass over the stream; word state carries across buffers
func count(in io.Reader) (lineCount int, wordCount int, byteCount int, err error) {
	buffer := make([]byte, 4096)
	inWord := false
	for {
		n, readError := in.Read(buffer)
		byteCount += n
		for _, b := range buffer[:n] {
			if '\n' == b {
				lineCount += 1
			}
			switch b {
			case ' ', '\t', '\n', '\r', '\v', '\f':
				inWord = false
			default:
				if !inWord {
					inWord = true
					wordCount += 1
				}
			}
		}
		if io.EOF == readError {
			return lineCount, wordCount, byteCount, nil
		}
		if nil != readError {
			return lineCount, wordCount, byteCount, readError
		}
	}
}
