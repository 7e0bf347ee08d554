// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"

	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/log"
)

// DefaultStyle is the chroma style used when diff.style is not configured.
const DefaultStyle = "monokai"

type colorOptions struct {
	style   string
	profile termenv.Profile
}

// ColorOption customizes Colorize.
type ColorOption func(*colorOptions)

// WithStyle selects a chroma style by name.
func WithStyle(name string) ColorOption {
	return func(o *colorOptions) { o.style = name }
}

// WithProfile overrides the detected terminal colour profile.
func WithProfile(p termenv.Profile) ColorOption {
	return func(o *colorOptions) { o.profile = p }
}

// Colorize highlights unified diff text with ANSI escapes. The Ascii profile,
// and any tokenizer or formatter failure, returns text unchanged.
func Colorize(text string, opts ...ColorOption) string {
	style, _ := config.GetString("diff.style", DefaultStyle)
	o := colorOptions{
		style:   style,
		profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if text == "" || o.profile == termenv.Ascii {
		return text
	}

	lexer := chroma.Coalesce(lexers.Get("diff"))

	s := chromaStyles.Get(o.style)
	if s == nil {
		s = chromaStyles.Fallback
	}

	formatter := formatters.Get(formatterName(o.profile))
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.Debugf("diff tokenise failed: %v", err)
		return text
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, s, iterator); err != nil {
		log.Debugf("diff format failed: %v", err)
		return text
	}
	return buf.String()
}

// formatterName maps a terminal profile onto a chroma terminal formatter.
func formatterName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	default:
		return "terminal"
	}
}
