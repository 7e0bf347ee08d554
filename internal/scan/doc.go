// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package scan enumerates the files of a directory tree whose names end with
// one of a set of suffixes, returning their paths relative to the tree root.
package scan
