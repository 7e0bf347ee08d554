// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package partition splits two path collections into the paths they share and
// the paths unique to each side.
package partition

import (
	"slices"
)

// Result holds the three disjoint sets derived from two path collections.
// Together they cover the union of both inputs exactly once.
type Result struct {
	Common []string
	OnlyA  []string
	OnlyB  []string
}

// Partition treats a and b as sets (duplicates collapse) and returns their
// intersection and both differences, each sorted ascending.
func Partition(a, b []string) Result {
	setA := toSet(a)
	setB := toSet(b)

	r := Result{
		Common: []string{},
		OnlyA:  []string{},
		OnlyB:  []string{},
	}

	for p := range setA {
		if setB[p] {
			r.Common = append(r.Common, p)
		} else {
			r.OnlyA = append(r.OnlyA, p)
		}
	}
	for p := range setB {
		if !setA[p] {
			r.OnlyB = append(r.OnlyB, p)
		}
	}

	slices.Sort(r.Common)
	slices.Sort(r.OnlyA)
	slices.Sort(r.OnlyB)
	return r
}

// Len is the size of the union.
func (r Result) Len() int {
	return len(r.Common) + len(r.OnlyA) + len(r.OnlyB)
}

// Union returns every path of the result, sorted.
func (r Result) Union() []string {
	all := make([]string, 0, r.Len())
	all = append(all, r.Common...)
	all = append(all, r.OnlyA...)
	all = append(all, r.OnlyB...)
	slices.Sort(all)
	return all
}

func toSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set
}
