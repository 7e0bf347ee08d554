// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ reads text files as line sequences and renders unified diffs
// between them, along with line statistics and terminal colouring.
package differ
