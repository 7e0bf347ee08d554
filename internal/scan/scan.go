// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfctl/dirdiff/internal/log"
)

// ErrNoExtensions is returned when an extension spec holds no usable suffix.
var ErrNoExtensions = errors.New("file extensions are required")

// Extensions is the ordered set of raw filename suffixes a scan matches on.
type Extensions []string

// ParseExtensions splits a comma-separated spec such as "py,txt". Entries are
// trimmed, empties dropped and repeats collapsed, keeping first-seen order.
func ParseExtensions(spec string) (Extensions, error) {
	var exts Extensions
	seen := map[string]bool{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		exts = append(exts, part)
	}

	if len(exts) == 0 {
		return nil, ErrNoExtensions
	}
	log.Tracef("extensions parsed: spec=%q exts=%v", spec, exts)
	return exts, nil
}

// Match reports whether name ends with any of the suffixes. This is a raw
// suffix test, so "py" matches "happy" too.
func (e Extensions) Match(name string) bool {
	for _, suffix := range e {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// String renders the set in its comma-separated input form.
func (e Extensions) String() string {
	return strings.Join(e, ",")
}

type options struct {
	skipDirs map[string]bool
}

// Option customizes a Scan.
type Option func(*options)

// WithSkipDirs prunes any directory below the root whose base name is listed.
func WithSkipDirs(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				o.skipDirs[n] = true
			}
		}
	}
}

// Scan walks root and returns the slash-separated paths, relative to root, of
// every non-directory entry whose name matches exts. Paths come back in walk
// (lexical) order. An inaccessible root, or any directory that cannot be read
// on the way down, fails the scan.
func Scan(root string, exts Extensions, opts ...Option) ([]string, error) {
	o := options{skipDirs: map[string]bool{}}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot access %s: %w", root, &fs.PathError{Op: "scan", Path: root, Err: errors.New("not a directory")})
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != root && o.skipDirs[d.Name()] {
				log.Tracef("skipping dir: path=%s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !exts.Match(d.Name()) {
			return nil
		}

		// WalkDir does not follow links; a link to a directory is not a file.
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		matches = append(matches, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	log.Debugf("scan complete: root=%s matches=%d", root, len(matches))
	return matches, nil
}
