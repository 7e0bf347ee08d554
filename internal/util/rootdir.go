// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseRootDir resolves a comparison root given on the command line to a
// clean absolute path. A leading "~" is the user's home directory. The path is
// not checked for existence; scanning reports access errors.
func ParseRootDir(rootDir string) (string, error) {
	rootDir = strings.TrimSpace(rootDir)
	if rootDir == "" {
		return "", os.ErrInvalid
	}

	if rootDir == "~" || strings.HasPrefix(rootDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		rootDir = filepath.Join(home, rootDir[1:])
	}

	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}
	return dir, nil
}
