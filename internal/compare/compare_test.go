// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package compare

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/dirdiff/internal/differ"
	"github.com/tfctl/dirdiff/internal/scan"
)

func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func exts(t *testing.T, spec string) scan.Extensions {
	t.Helper()
	e, err := scan.ParseExtensions(spec)
	require.NoError(t, err)
	return e
}

// scenario builds the two-tree fixture: a.txt differs, b.py and c.py are unique.
func scenario(t *testing.T) *Session {
	t.Helper()
	return &Session{
		RootA:      makeTree(t, map[string]string{"a.txt": "x\n", "b.py": "print(1)\n"}),
		RootB:      makeTree(t, map[string]string{"a.txt": "y\n", "c.py": "print(2)\n"}),
		Extensions: exts(t, "txt,py"),
		Context:    differ.DefaultContext,
	}
}

func TestScanScenario(t *testing.T) {
	s := scenario(t)

	r, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, r.Common)
	assert.Equal(t, []string{"b.py"}, r.OnlyA)
	assert.Equal(t, []string{"c.py"}, r.OnlyB)
	assert.Equal(t, []string{"a.txt"}, r.Changed)

	d, err := s.Diff("a.txt")
	require.NoError(t, err)
	assert.Contains(t, d.Lines, "-x\n")
	assert.Contains(t, d.Lines, "+y\n")
	assert.Equal(t, "--- "+filepath.Join(s.RootA, "a.txt")+"\n", d.Lines[0])
	assert.Equal(t, "+++ "+filepath.Join(s.RootB, "a.txt")+"\n", d.Lines[1])
}

func TestEntries(t *testing.T) {
	s := scenario(t)
	same := "same\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.RootA, "same.txt"), []byte(same), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.RootB, "same.txt"), []byte(same), 0o644))

	r, err := s.Scan()
	require.NoError(t, err)

	entries := r.Entries(false)
	require.Len(t, entries, 3)

	assert.Equal(t, "b.py", entries[0].Path)
	assert.Equal(t, SideA, entries[0].Side)
	assert.Equal(t, StatusOnlyA, entries[0].Status)
	assert.Equal(t, int64(len("print(1)\n")), entries[0].SizeA)
	assert.NotEmpty(t, entries[0].MtimeA)
	assert.Empty(t, entries[0].MtimeB)

	assert.Equal(t, "c.py", entries[1].Path)
	assert.Equal(t, StatusOnlyB, entries[1].Status)

	assert.Equal(t, "a.txt", entries[2].Path)
	assert.Equal(t, SideBoth, entries[2].Side)
	assert.Equal(t, StatusChanged, entries[2].Status)
	assert.Equal(t, 1, entries[2].Changed)
	assert.Equal(t, 0, entries[2].Added)
	assert.Equal(t, 0, entries[2].Deleted)

	all := r.Entries(true)
	require.Len(t, all, 4)
	assert.Equal(t, "same.txt", all[3].Path)
	assert.Equal(t, StatusIdentical, all[3].Status)
	assert.Equal(t, []string{"a.txt"}, r.Changed)
}

func TestUniqueAndLabel(t *testing.T) {
	s := scenario(t)

	r, err := s.Scan()
	require.NoError(t, err)

	unique := r.Unique()
	require.Len(t, unique, 2)
	assert.Equal(t, "Unique in "+s.RootA+": b.py", r.Label(unique[0]))
	assert.Equal(t, "Unique in "+s.RootB+": c.py", r.Label(unique[1]))
	assert.Equal(t, s.RootB, r.Dir(SideB))
	assert.Equal(t, s.RootA, r.Dir(SideBoth))
}

func TestRescanReplacesEverything(t *testing.T) {
	s := scenario(t)

	first, err := s.Scan()
	require.NoError(t, err)
	require.Equal(t, 3, first.Len())

	s.SetExtensions(exts(t, "py"))
	second, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{}, second.Common)
	assert.Equal(t, []string{"b.py"}, second.OnlyA)
	assert.Equal(t, []string{"c.py"}, second.OnlyB)
	assert.Equal(t, []string{}, second.Changed)
	assert.Len(t, second.Entries(true), 2)

	// The earlier result is untouched.
	assert.Equal(t, []string{"a.txt"}, first.Common)
}

func TestScanNoMatches(t *testing.T) {
	s := scenario(t)
	s.SetExtensions(exts(t, "md"))

	r, err := s.Scan()
	require.NoError(t, err)

	assert.Empty(t, r.Common)
	assert.Empty(t, r.OnlyA)
	assert.Empty(t, r.OnlyB)
	assert.Empty(t, r.Changed)
	assert.Empty(t, r.Entries(true))
}

func TestScanErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		s := scenario(t)
		s.RootB = filepath.Join(s.RootB, "nope")

		_, err := s.Scan()
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("no extensions", func(t *testing.T) {
		s := scenario(t)
		s.SetExtensions(nil)

		_, err := s.Scan()
		assert.ErrorIs(t, err, scan.ErrNoExtensions)
	})

	t.Run("undecodable common file", func(t *testing.T) {
		s := scenario(t)
		require.NoError(t, os.WriteFile(filepath.Join(s.RootA, "bin.txt"), []byte{0xff, 0xfe}, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(s.RootB, "bin.txt"), []byte("text\n"), 0o644))

		_, err := s.Scan()
		require.Error(t, err)
		assert.ErrorIs(t, err, differ.ErrDecode)
		assert.Contains(t, err.Error(), "bin.txt")
	})
}

func TestSkip(t *testing.T) {
	s := scenario(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.RootA, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(s.RootA, "vendor", "v.py"), []byte("v\n"), 0o644))

	r, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.py", "vendor/v.py"}, r.OnlyA)

	s.Skip = []string{"vendor"}
	r, err = s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.py"}, r.OnlyA)
}
