// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package compare ties scanning, partitioning and diffing together into a
// single comparison of two directory trees.
//
// A Session holds the inputs. Each call to Session.Scan produces a new Result
// from scratch; nothing carries over from an earlier scan, so changing the
// extension filter with SetExtensions and scanning again replaces every set.
// Diffs are not retained. Session.Diff recomputes one on request.
package compare
