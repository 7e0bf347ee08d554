// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"path/filepath"
)

// Side names the tree an entry was found in.
type Side string

const (
	SideA    Side = "a"
	SideB    Side = "b"
	SideBoth Side = "both"
)

// Status classifies an entry.
type Status string

const (
	StatusOnlyA     Status = "only-a"
	StatusOnlyB     Status = "only-b"
	StatusChanged   Status = "changed"
	StatusIdentical Status = "identical"
)

// Entry is one row of a comparison listing. The json tags are the attribute
// keys available to --attrs, --filter and --sort.
type Entry struct {
	Path    string `json:"path"`
	Side    Side   `json:"side"`
	Status  Status `json:"status"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
	Changed int    `json:"changed"`
	SizeA   int64  `json:"size_a,omitempty"`
	SizeB   int64  `json:"size_b,omitempty"`
	MtimeA  string `json:"mtime_a,omitempty"`
	MtimeB  string `json:"mtime_b,omitempty"`
}

// Dir returns the root an entry of side s lives under. Common entries report
// RootA.
func (r *Result) Dir(s Side) string {
	if s == SideB {
		return r.RootB
	}
	return r.RootA
}

// Entries lists unique files of both sides, then changed common files. When
// all is set identical common files are included too.
func (r *Result) Entries(all bool) []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Status == StatusIdentical && !all {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Unique returns the entries found on one side only, A before B.
func (r *Result) Unique() []Entry {
	var entries []Entry
	for _, e := range r.entries {
		if e.Side != SideBoth {
			entries = append(entries, e)
		}
	}
	return entries
}

// Label renders a unique entry as "Unique in <dir>: <path>".
func (r *Result) Label(e Entry) string {
	return "Unique in " + r.Dir(e.Side) + ": " + filepath.FromSlash(e.Path)
}
