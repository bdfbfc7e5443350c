// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argmap

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// aliases
type AliasMap map[string]string

// returned options
type OptionsMap map[string][]string

// parse configuration: the boolean-name set and the alias table
//
// configuration is only read during Parse, so one configured ArgMap
// may be shared by concurrent Parse calls
type ArgMap struct {
	boolean map[string]struct{}
	aliases AliasMap
}

// create an empty configuration
func New() *ArgMap {
	return &ArgMap{
		boolean: make(map[string]struct{}),
		aliases: make(AliasMap),
	}
}

// Boolean declares an option name that never takes the following
// argument as its value; chainable and idempotent.
func (am *ArgMap) Boolean(name string) *ArgMap {
	am.boolean[name] = struct{}{}
	return am
}

// Booleans declares several boolean names at once.
func (am *ArgMap) Booleans(names []string) *ArgMap {
	for _, name := range names {
		am.boolean[name] = struct{}{}
	}
	return am
}

// Alias makes one option name stand for another, e.g. "v" for
// "verbose"; aliases are resolved before the boolean set is consulted
// so declaring the canonical name boolean covers its aliases.
func (am *ArgMap) Alias(alias string, canonical string) *ArgMap {
	am.aliases[alias] = canonical
	return am
}

// from OS command-line
func (am *ArgMap) ParseOS() (program string, arguments []string, options OptionsMap) {
	arguments, options = am.Parse(os.Args[1:])
	program = filepath.Base(os.Args[0])
	return
}

// Parse splits an argument list into positional arguments and an
// options map.  It is total: any input produces a result and there is
// no error return.  Positional order is preserved; repeated options
// append to the value list; an option seen without a value is present
// with an empty list.
func (am *ArgMap) Parse(inputs []string) (arguments []string, options OptionsMap) {

	arguments = make([]string, 0, 10)
	options = make(OptionsMap)

	// the single open option awaiting a value from a later token
	pending := ""
	havePending := false

	dashdash := false

loop:
	for _, item := range inputs {

		if dashdash {
			arguments = append(arguments, item)
			continue loop
		}

		// end of options; the open option, if any, stays open
		// and is flushed after the scan
		if "--" == item {
			dashdash = true
			continue loop
		}

		// a lone dash is always positional
		if "-" == item {
			arguments = append(arguments, item)
			continue loop
		}

		// long option
		if strings.HasPrefix(item, "--") {
			if havePending {
				markPresent(options, pending)
				havePending = false
			}
			k := item[2:]
			if i := strings.IndexByte(k, '='); i >= 0 {
				appendValue(options, am.canonical(k[:i]), k[i+1:])
				continue loop
			}
			k = am.canonical(k)
			if _, ok := am.boolean[k]; ok {
				markPresent(options, k)
			} else {
				pending = k
				havePending = true
			}
			continue loop
		}

		// short option or cluster
		if strings.HasPrefix(item, "-") {

			r := []rune(item) // r[0] is the dash, len(r) >= 2

			if havePending {
				// digit lead: the whole token, dash included,
				// is the open option's value ("-n -555")
				if isNumeric(r[1]) {
					appendValue(options, pending, item)
					havePending = false
					continue loop
				}
				markPresent(options, pending)
				havePending = false
			}

			if i := strings.IndexByte(item, '='); i >= 0 {
				appendValue(options, am.canonical(item[1:i]), item[i+1:])
				continue loop
			}

			// scan the cluster, final character handled below
			for i := 1; i < len(r)-1; i += 1 {
				if havePending {
					// a digit or a non-letter closes the open
					// option with the rest of the token ("-n1")
					if isNumeric(r[i]) || isBreak(r[i]) {
						appendValue(options, pending, string(r[i:]))
						havePending = false
						continue loop
					}
					markPresent(options, pending)
					havePending = false
				}
				k := am.canonical(string(r[i]))
				if _, ok := am.boolean[k]; ok {
					markPresent(options, k)
				} else {
					pending = k
					havePending = true
				}
			}

			// the final character either closes the option opened
			// by the character before it or opens its own
			last := r[len(r)-1]
			k := am.canonical(string(last))
			_, isBool := am.boolean[k]
			if havePending {
				if isBool {
					markPresent(options, pending)
					markPresent(options, k)
					havePending = false
				} else if isNumeric(last) || isBreak(last) {
					appendValue(options, pending, string(last))
					havePending = false
				} else {
					markPresent(options, pending)
					pending = k
				}
			} else if isBool {
				markPresent(options, k)
			} else {
				pending = k
				havePending = true
			}
			continue loop
		}

		// plain token: value of the open option or positional
		if havePending {
			appendValue(options, pending, item)
			havePending = false
			continue loop
		}
		arguments = append(arguments, item)
	}

	if havePending {
		markPresent(options, pending)
	}
	return
}

// parse with the default empty configuration
func Parse(inputs []string) (arguments []string, options OptionsMap) {
	return New().Parse(inputs)
}

// from OS command-line with the default empty configuration
func ParseOS() (program string, arguments []string, options OptionsMap) {
	return New().ParseOS()
}

func (am *ArgMap) canonical(name string) string {
	if newName, ok := am.aliases[name]; ok {
		return newName
	}
	return name
}

func appendValue(options OptionsMap, name string, value string) {
	options[name] = append(options[name], value)
}

// record presence without overwriting values already seen
func markPresent(options OptionsMap, name string) {
	if _, ok := options[name]; !ok {
		options[name] = make([]string, 0)
	}
}

func isNumeric(r rune) bool {
	return '0' <= r && r <= '9'
}

// anything that could not be an option letter
func isBreak(r rune) bool {
	return !unicode.IsLetter(r)
}
