// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package partition

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want Result
	}{
		{
			name: "scenario",
			a:    []string{"a.txt", "b.py"},
			b:    []string{"c.py", "a.txt"},
			want: Result{Common: []string{"a.txt"}, OnlyA: []string{"b.py"}, OnlyB: []string{"c.py"}},
		},
		{
			name: "both empty",
			want: Result{Common: []string{}, OnlyA: []string{}, OnlyB: []string{}},
		},
		{
			name: "duplicates collapse",
			a:    []string{"x", "x", "y"},
			b:    []string{"y", "y"},
			want: Result{Common: []string{"y"}, OnlyA: []string{"x"}, OnlyB: []string{}},
		},
		{
			name: "disjoint",
			a:    []string{"b", "a"},
			b:    []string{"d", "c"},
			want: Result{Common: []string{}, OnlyA: []string{"a", "b"}, OnlyB: []string{"c", "d"}},
		},
		{
			name: "identical",
			a:    []string{"sub/z", "a"},
			b:    []string{"a", "sub/z"},
			want: Result{Common: []string{"a", "sub/z"}, OnlyA: []string{}, OnlyB: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Partition(tt.a, tt.b))
		})
	}
}

// Every path from either side lands in exactly one of the three sets.
func TestPartitionCoversUnionOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		var a, b []string
		na, nb := rng.Intn(40), rng.Intn(40)
		for i := 0; i < na; i++ {
			a = append(a, fmt.Sprintf("f%d", rng.Intn(30)))
		}
		for i := 0; i < nb; i++ {
			b = append(b, fmt.Sprintf("f%d", rng.Intn(30)))
		}

		r := Partition(a, b)

		union := map[string]bool{}
		for _, p := range append(slices.Clone(a), b...) {
			union[p] = true
		}

		seen := map[string]int{}
		for _, set := range [][]string{r.Common, r.OnlyA, r.OnlyB} {
			for _, p := range set {
				seen[p]++
			}
		}

		assert.Equal(t, len(union), r.Len(), "round %d", round)
		for p := range union {
			assert.Equal(t, 1, seen[p], "round %d path %s", round, p)
		}
		assert.True(t, slices.IsSorted(r.Union()))
	}
}
