// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders a markdown page and a man page for every dirdiff
// command into the docs directory named by its only argument.
package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/dirdiff/internal/command"
)

//go:embed templates
var templates embed.FS

type Extras struct {
	Subcommands []Extra `yaml:"subcommands"`
}

// Extra is the hand-written part of a command's page.
type Extra struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Extra
	Short   string
	Usage   string
	Flags   []Flag
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

// usageFlag and valueFlag are satisfied by the urfave/cli flag types.
type usageFlag interface {
	GetUsage() string
	TakesValue() bool
}

type valueFlag interface {
	GetValue() string
}

type hiddenFlag interface {
	IsVisible() bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	extras, err := loadExtras()
	if err != nil {
		panic(err)
	}

	app, err := command.InitApp(context.Background(), []string{"dirdiff"})
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: "templates/dirdiff.md.tmpl", Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: "templates/dirdiff.man.tmpl", Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "dirdiff-", Suffix: ".1"},
	}

	version := getVersion()
	for _, cmd := range app.Commands {
		metadata := newTemplateData(cmd, extras[cmd.Name], version)

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0755); err != nil {
				panic(err)
			}

			path := filepath.Join(t.Folder, t.Prefix+cmd.Name+t.Suffix)
			fmt.Println("Generating", path)

			file, err := os.Create(path)
			if err != nil {
				panic(err)
			}

			if err := render(file, t.Template, metadata); err != nil {
				panic(err)
			}

			file.Close()
		}
	}
}

// loadExtras reads the embedded per-command descriptions and examples, keyed
// by command name.
func loadExtras() (map[string]Extra, error) {
	data, err := templates.ReadFile("templates/dirdiff.yaml")
	if err != nil {
		return nil, err
	}

	var extras Extras
	if err := yaml.Unmarshal(data, &extras); err != nil {
		return nil, err
	}

	m := make(map[string]Extra, len(extras.Subcommands))
	for _, e := range extras.Subcommands {
		m[e.ID] = e
	}
	return m, nil
}

func newTemplateData(cmd *cli.Command, extra Extra, version string) TemplateData {
	extra.ID = cmd.Name

	usage := cmd.UsageText
	if usage == "" {
		usage = "dirdiff " + cmd.Name + " [options]"
	}

	return TemplateData{
		Extra:   extra,
		Short:   cmd.Usage,
		Usage:   usage,
		Flags:   docFlags(cmd.Flags),
		Date:    time.Now().Format("January 2, 2006"),
		Version: version,
		IDUpper: strings.ToUpper(cmd.Name),
	}
}

// docFlags describes the visible flags, sorted by name.
func docFlags(flags []cli.Flag) []Flag {
	var result []Flag
	for _, f := range flags {
		if h, ok := f.(hiddenFlag); ok && !h.IsVisible() {
			continue
		}

		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0]}
		if u, ok := f.(usageFlag); ok {
			flag.Description = u.GetUsage()
			if u.TakesValue() {
				syntax[0] += " <value>"
			}
		}
		if v, ok := f.(valueFlag); ok {
			flag.Default = v.GetValue()
		}
		flag.Syntax = strings.Join(syntax, ", ")

		result = append(result, flag)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

func render(w io.Writer, name string, data TemplateData) error {
	tmpl, err := template.ParseFS(templates, name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
