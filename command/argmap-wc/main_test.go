// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	in := "one two\nthree\tfour five\n\nsix\n"

	lineCount, wordCount, byteCount, err := count(strings.NewReader(in))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 4, lineCount, "wrong line count")
	assert.Equal(t, 6, wordCount, "wrong word count")
	assert.Equal(t, len(in), byteCount, "wrong byte count")
}

func TestCountNoFinalNewline(t *testing.T) {
	in := "alpha  beta"

	lineCount, wordCount, byteCount, err := count(strings.NewReader(in))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 0, lineCount, "wrong line count")
	assert.Equal(t, 2, wordCount, "wrong word count")
	assert.Equal(t, len(in), byteCount, "wrong byte count")
}

func TestCountEmpty(t *testing.T) {
	lineCount, wordCount, byteCount, err := count(strings.NewReader(""))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 0, lineCount, "wrong line count")
	assert.Equal(t, 0, wordCount, "wrong word count")
	assert.Equal(t, 0, byteCount, "wrong byte count")
}
