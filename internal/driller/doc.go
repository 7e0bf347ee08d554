// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller looks up dotted attribute paths in entry JSON for the
// filter and output stages.
package driller
