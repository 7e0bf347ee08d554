// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrDecode marks content that is not valid UTF-8 text.
var ErrDecode = errors.New("cannot decode file as text")

// ReadLines reads a whole file as UTF-8 text and splits it after each "\n".
// The last line keeps whatever terminator it had, possibly none. Binary or
// otherwise undecodable content fails with an error wrapping ErrDecode.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits s after every newline. "" yields no lines.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
