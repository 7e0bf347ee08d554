// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package browser is the terminal UI of the ui command. It shows the files
// unique to either tree on one tab and the changed common files on another,
// opens a scrollable colourised diff for a selected file, and re-prompts for
// the extension list on "e", rescanning from scratch.
package browser
