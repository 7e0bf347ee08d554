// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects comparison entries with --filter expressions.
//
// A spec is a list of key-operator-target expressions joined by a delimiter
// (default ",", overridden by DIRDIFF_FILTER_DELIM). A row is kept when it
// matches every expression.
//
// Operators, each negated by a leading "!":
//
//   - = : equality, numeric when the value is a number
//   - ~ : case-insensitive equality
//   - ^ : prefix
//   - < : less than, numeric or lexical
//   - > : greater than, numeric or lexical
//   - @ : substring, or membership for lists and maps
//   - / : regular expression
//
// Examples:
//
//   - "status=changed" : common files whose contents differ
//   - "path^internal/" : entries under internal/
//   - "added>10" : more than ten added lines
//   - "side!=b" : everything not unique to the second tree
//   - "path/_test\.go$" : test files
//
// Keys match the OutputKey of the --attrs columns first, then the raw entry
// keys, so a row can be filtered on a field that is not displayed.
package filters
