// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output filters, sorts and renders comparison entries as a text
// table, JSON, YAML or raw JSON, and lists the attribute schema.
package output
