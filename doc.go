// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command-line argument tokenising
//
// Splits a list of arguments into positional arguments and an options
// map; everything stays a string and no option schema is required.
// Forms recognised:
//   --option              - option with no value yet, the next plain
//                           argument becomes its value
//   --option=value        - set value
//   -o                    - single letter option, value rules as above
//   -o=value              - set value
//   -ovalue               - set value when value starts with a digit
//                           or a non-letter, e.g. -n1 or -c+5
//   -abc                  - cluster of single letter options, the last
//                           letter may still take a value
//   --                    - stop option parsing, the rest is positional
//   -                     - always a positional argument
//
// Note:
//   Repeated options append to the value list, e.g. "-x=1 -x=2" makes
//   options["x"] == []string{"1", "2"}.
//   An option seen without a value is present with an empty list, so
//   presence is tested with the two-value map index.
//   A name declared boolean never takes the following argument as its
//   value; this is the only way "-v file" keeps file positional.
//   A token whose first character after the dash is a digit is the
//   value of the preceding open option, allowing "-n -555".
//
// Alias table:
//   This allows an option to be aliased e.g. -v -> --verbose; aliases
//   are resolved before the boolean set is consulted.
//
// Returns:
//   arguments             - []string  (everything not bound to an option
//                           and everything after --)
//   options               - map["option"]=[]string{"value1","value2"}
package argmap
