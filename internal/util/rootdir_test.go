// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRootDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		setupDir func(t *testing.T) (rootDir string, want string)
		wantErr  bool
		errIs    error
	}{
		{
			name: "absolute_path",
			setupDir: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				return tmpDir, tmpDir
			},
		},
		{
			name: "absolute_path_cleaned",
			setupDir: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				return tmpDir + "/./sub/../", tmpDir
			},
		},
		{
			name: "relative_path",
			setupDir: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				chdir(t, filepath.Dir(tmpDir))
				return filepath.Base(tmpDir), tmpDir
			},
		},
		{
			name: "dot_relative_path",
			setupDir: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				chdir(t, tmpDir)
				return ".", tmpDir
			},
		},
		{
			name: "parent_relative_path",
			setupDir: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				subDir := filepath.Join(tmpDir, "subdir")
				if err := os.Mkdir(subDir, 0755); err != nil {
					t.Fatalf("failed to create subdir: %v", err)
				}
				chdir(t, subDir)
				return "..", tmpDir
			},
		},
		{
			name: "home_dir",
			setupDir: func(t *testing.T) (string, string) {
				return "~/src/project", filepath.Join(home, "src", "project")
			},
		},
		{
			name: "bare_tilde",
			setupDir: func(t *testing.T) (string, string) {
				return "~", home
			},
		},
		{
			name: "nonexistent_directory_is_not_checked",
			setupDir: func(t *testing.T) (string, string) {
				return "/nonexistent/path", "/nonexistent/path"
			},
		},
		{
			name: "empty_root_dir",
			setupDir: func(t *testing.T) (string, string) {
				return "", ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
		{
			name: "blank_root_dir",
			setupDir: func(t *testing.T) (string, string) {
				return "   ", ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootDir, want := tt.setupDir(t)

			dir, err := ParseRootDir(rootDir)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			assert.NoError(t, err)
			assert.True(t, filepath.IsAbs(dir))
			assert.Equal(t, evalDir(want), evalDir(dir))
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldCwd)
	})
}

// evalDir resolves symlinks where the path exists, so temp dirs under a
// linked /tmp compare equal.
func evalDir(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return filepath.Clean(dir)
}
