// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestLoadExtras(t *testing.T) {
	extras, err := loadExtras()
	require.NoError(t, err)

	for _, id := range []string{"ls", "diff", "ui", "completion"} {
		assert.NotEmpty(t, extras[id].Examples, id)
	}
}

func TestDocFlags(t *testing.T) {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "ext", Aliases: []string{"e"}, Usage: "suffixes"},
		&cli.IntFlag{Name: "padding", Hidden: true},
		&cli.BoolFlag{Name: "all", Usage: "everything"},
	}

	got := docFlags(flags)
	require.Len(t, got, 2)
	assert.Equal(t, "all", got[0].ID)
	assert.Equal(t, "--all", got[0].Syntax)
	assert.Equal(t, "ext", got[1].ID)
	assert.Equal(t, "--ext <value>, -e", got[1].Syntax)
	assert.Equal(t, "suffixes", got[1].Description)
}

func TestRender(t *testing.T) {
	data := TemplateData{
		Extra: Extra{
			ID:       "ls",
			Examples: []Example{{Command: "dirdiff ls a b -e py", Description: "Python files."}},
		},
		Short:   "list differences",
		Usage:   "dirdiff ls <dir-a> <dir-b> [options]",
		Flags:   []Flag{{ID: "ext", Syntax: "--ext <value>", Description: "suffixes"}},
		Version: "dev",
		IDUpper: "LS",
	}

	var md bytes.Buffer
	require.NoError(t, render(&md, "templates/dirdiff.md.tmpl", data))
	assert.Contains(t, md.String(), "# dirdiff ls")
	assert.Contains(t, md.String(), "| `--ext <value>` | suffixes |")
	assert.Contains(t, md.String(), "dirdiff ls a b -e py")

	var man bytes.Buffer
	require.NoError(t, render(&man, "templates/dirdiff.man.tmpl", data))
	assert.Contains(t, man.String(), ".TH DIRDIFF-LS 1")
	assert.Contains(t, man.String(), ".B --ext <value>")
}
