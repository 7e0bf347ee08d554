// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/pmezard/go-difflib/difflib"
	godiff "github.com/sourcegraph/go-diff/diff"
)

// DefaultContext is the number of unchanged lines shown around each change.
const DefaultContext = 3

const noNewline = `\ No newline at end of file`

// Diff is a unified diff between two line sequences. Lines carry their own
// trailing newline. An empty Lines means the inputs were line identical.
type Diff struct {
	From  string
	To    string
	Lines []string
}

// Stat counts the lines a diff touches. A removed line directly followed by
// an added one is counted once as Changed.
type Stat struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
	Changed int `json:"changed"`
}

// Files reads both files and diffs them, labelling each side with its path.
func Files(fromPath, toPath string, context int) (*Diff, error) {
	log.Debugf(">> differ.Files(%s, %s)", fromPath, toPath)

	a, err := ReadLines(fromPath)
	if err != nil {
		return nil, err
	}
	b, err := ReadLines(toPath)
	if err != nil {
		return nil, err
	}

	return Lines(a, b, fromPath, toPath, context), nil
}

// Lines diffs two line sequences. A negative context means DefaultContext.
func Lines(a, b []string, from, to string, context int) *Diff {
	if context < 0 {
		context = DefaultContext
	}

	d := &Diff{From: from, To: to}

	groups := difflib.NewMatcher(a, b).GetGroupedOpCodes(context)
	if len(groups) == 0 {
		return d
	}

	d.Lines = append(d.Lines, "--- "+from+"\n", "+++ "+to+"\n")
	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		d.Lines = append(d.Lines, fmt.Sprintf("@@ -%s +%s @@\n",
			formatRange(first.I1, last.I2), formatRange(first.J1, last.J2)))

		for _, op := range group {
			if op.Tag == 'e' {
				d.emit(" ", a[op.I1:op.I2])
				continue
			}
			if op.Tag == 'r' || op.Tag == 'd' {
				d.emit("-", a[op.I1:op.I2])
			}
			if op.Tag == 'r' || op.Tag == 'i' {
				d.emit("+", b[op.J1:op.J2])
			}
		}
	}

	return d
}

// emit appends prefixed lines, terminating any line that lacks a newline and
// flagging it the way diff(1) does.
func (d *Diff) emit(prefix string, lines []string) {
	for _, line := range lines {
		if strings.HasSuffix(line, "\n") {
			d.Lines = append(d.Lines, prefix+line)
			continue
		}
		d.Lines = append(d.Lines, prefix+line+"\n", noNewline+"\n")
	}
}

// Empty reports whether the two sides had no differing lines.
func (d *Diff) Empty() bool {
	return d == nil || len(d.Lines) == 0
}

// Text joins the diff lines into one string.
func (d *Diff) Text() string {
	if d.Empty() {
		return ""
	}
	return strings.Join(d.Lines, "")
}

// Stat parses the rendered diff and counts added, deleted and changed lines.
func (d *Diff) Stat() (Stat, error) {
	if d.Empty() {
		return Stat{}, nil
	}

	fd, err := godiff.ParseFileDiff([]byte(d.Text()))
	if err != nil {
		return Stat{}, fmt.Errorf("failed to parse diff of %s: %w", d.To, err)
	}

	st := fd.Stat()
	return Stat{
		Added:   int(st.Added),
		Deleted: int(st.Deleted),
		Changed: int(st.Changed),
	}, nil
}

// formatRange renders a hunk range as "start,length", "start" when the length
// is one, and "start-1,0" for an empty range.
func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}
