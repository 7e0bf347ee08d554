// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/dirdiff/internal/differ"
	"github.com/tfctl/dirdiff/internal/log"
	"github.com/tfctl/dirdiff/internal/partition"
	"github.com/tfctl/dirdiff/internal/scan"
)

// Session holds the inputs of a comparison. A Session is cheap and carries no
// derived state; every Scan starts over.
type Session struct {
	RootA      string
	RootB      string
	Extensions scan.Extensions
	// Skip lists directory base names pruned from both walks.
	Skip []string
	// Context lines around each hunk. Negative means differ.DefaultContext.
	Context int
}

// Result is one complete comparison. The embedded partition covers every
// matched path exactly once.
type Result struct {
	RootA      string
	RootB      string
	Extensions scan.Extensions
	partition.Result

	// Changed lists the common paths whose contents differ, sorted.
	Changed []string

	entries []Entry
}

// SetExtensions replaces the filter. The next Scan uses it.
func (s *Session) SetExtensions(exts scan.Extensions) {
	log.Debugf("extensions replaced: old=%s new=%s", s.Extensions, exts)
	s.Extensions = exts
}

// Scan walks both roots, partitions the matched paths and diffs every common
// file. The first scan, read or decode failure aborts the whole comparison.
func (s *Session) Scan() (*Result, error) {
	log.Debugf(">> compare.Scan(%s, %s, %s)", s.RootA, s.RootB, s.Extensions)

	if len(s.Extensions) == 0 {
		return nil, scan.ErrNoExtensions
	}

	opts := []scan.Option{scan.WithSkipDirs(s.Skip...)}

	a, err := scan.Scan(s.RootA, s.Extensions, opts...)
	if err != nil {
		return nil, err
	}
	b, err := scan.Scan(s.RootB, s.Extensions, opts...)
	if err != nil {
		return nil, err
	}

	r := &Result{
		RootA:      s.RootA,
		RootB:      s.RootB,
		Extensions: s.Extensions,
		Result:     partition.Partition(a, b),
		Changed:    []string{},
	}

	for _, rel := range r.OnlyA {
		e := Entry{Path: rel, Side: SideA, Status: StatusOnlyA}
		e.SizeA, e.MtimeA = stat(s.RootA, rel)
		r.entries = append(r.entries, e)
	}
	for _, rel := range r.OnlyB {
		e := Entry{Path: rel, Side: SideB, Status: StatusOnlyB}
		e.SizeB, e.MtimeB = stat(s.RootB, rel)
		r.entries = append(r.entries, e)
	}

	for _, rel := range r.Common {
		d, err := s.Diff(rel)
		if err != nil {
			return nil, err
		}

		e := Entry{Path: rel, Side: SideBoth, Status: StatusIdentical}
		e.SizeA, e.MtimeA = stat(s.RootA, rel)
		e.SizeB, e.MtimeB = stat(s.RootB, rel)

		if !d.Empty() {
			st, err := d.Stat()
			if err != nil {
				return nil, err
			}
			e.Status = StatusChanged
			e.Added, e.Deleted, e.Changed = st.Added, st.Deleted, st.Changed
			r.Changed = append(r.Changed, rel)
		}
		r.entries = append(r.entries, e)
	}

	log.Debugf("scan done: common=%d onlyA=%d onlyB=%d changed=%d",
		len(r.Common), len(r.OnlyA), len(r.OnlyB), len(r.Changed))
	return r, nil
}

// Diff recomputes the unified diff of one relative path, labelled with the
// full path on each side.
func (s *Session) Diff(rel string) (*differ.Diff, error) {
	from := filepath.Join(s.RootA, filepath.FromSlash(rel))
	to := filepath.Join(s.RootB, filepath.FromSlash(rel))

	d, err := differ.Files(from, to, s.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w", rel, err)
	}
	return d, nil
}

// stat returns the size and RFC3339 UTC modification time of root/rel. The
// file was just listed, so a failure only loses the detail.
func stat(root, rel string) (int64, string) {
	fi, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		log.Debugf("stat failed: root=%s rel=%s err=%v", root, rel, err)
		return 0, ""
	}
	return fi.Size(), fi.ModTime().UTC().Format(time.RFC3339)
}
