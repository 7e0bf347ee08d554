// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/tfctl/dirdiff/internal/compare"
	"github.com/tfctl/dirdiff/internal/differ"
	"github.com/tfctl/dirdiff/internal/log"
	"github.com/tfctl/dirdiff/internal/scan"
)

// ErrCancelled is returned by Err when the first extension prompt was
// dismissed or answered with an empty list.
var ErrCancelled = errors.New("no file extensions entered")

type mode int

const (
	modePrompt mode = iota
	modeList
	modeDiff
)

type tab int

const (
	tabUnique tab = iota
	tabDiffs
)

// chrome is the number of lines the list view spends on everything but rows.
const chrome = 6

// Model is the bubbletea model of the comparison browser.
type Model struct {
	session *compare.Session
	result  *compare.Result

	mode   mode
	tab    tab
	cursor [2]int

	input textinput.Model
	view  viewport.Model
	// title of the diff in view
	title string

	status string
	width  int
	height int

	// initial is set while the first prompt is showing. Cancelling it ends
	// the program with ErrCancelled.
	initial bool
	err     error
}

// New returns a browser over s. With extensions set the first comparison runs
// immediately; otherwise the browser opens on the extension prompt.
func New(s *compare.Session) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "py,txt"
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle

	m := Model{
		session: s,
		input:   ti,
		view:    viewport.New(80, 20),
		mode:    modeList,
	}

	if len(s.Extensions) == 0 {
		m.initial = true
		m.openPrompt()
		return m, nil
	}

	r, err := s.Scan()
	if err != nil {
		return m, err
	}
	m.setResult(r)

	return m, nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	if m.mode == modePrompt {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.view.Width = size.Width
		m.view.Height = max(size.Height-3, 1)
		return m, nil
	}

	switch m.mode {
	case modePrompt:
		return m.updatePrompt(msg)
	case modeDiff:
		return m.updateDiff(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			if m.initial {
				m.err = ErrCancelled
				return m, tea.Quit
			}
			m.input.Blur()
			m.mode = modeList
			m.status = ""
			return m, nil

		case "enter":
			exts, err := scan.ParseExtensions(m.input.Value())
			if err != nil {
				if m.initial {
					m.err = ErrCancelled
					return m, tea.Quit
				}
				m.status = err.Error()
				return m, nil
			}

			m.session.SetExtensions(exts)
			r, err := m.session.Scan()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}

			m.input.Blur()
			m.initial = false
			m.mode = modeList
			m.setResult(r)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.rows()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "right", "l", "left", "h", "shift+tab":
		m.tab = 1 - m.tab
		m.status = ""

	case "up", "k":
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}

	case "down", "j":
		if m.cursor[m.tab] < len(rows)-1 {
			m.cursor[m.tab]++
		}

	case "e":
		m.openPrompt()
		return m, textinput.Blink

	case "enter":
		if len(rows) == 0 {
			return m, nil
		}
		i := m.cursor[m.tab]

		if m.tab == tabUnique {
			e := m.result.Unique()[i]
			m.status = fmt.Sprintf("%s is only in %s", e.Path, m.result.Dir(e.Side))
			return m, nil
		}

		rel := m.result.Changed[i]
		d, err := m.session.Diff(rel)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		log.Debugf("diff opened: rel=%s lines=%d", rel, len(d.Lines))

		m.title = rel
		m.view.SetContent(differ.Colorize(d.Text()))
		m.view.GotoTop()
		m.mode = modeDiff
	}

	return m, nil
}

func (m Model) updateDiff(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			m.mode = modeList
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// openPrompt focuses the extension input, seeded with the current list.
func (m *Model) openPrompt() {
	m.mode = modePrompt
	m.status = ""
	m.input.SetValue(m.session.Extensions.String())
	m.input.CursorEnd()
	m.input.Focus()
}

// setResult replaces every list with those of r.
func (m *Model) setResult(r *compare.Result) {
	m.result = r
	m.cursor = [2]int{}
	m.status = fmt.Sprintf("%d unique, %d different (%s)", len(r.Unique()), len(r.Changed), r.Extensions)
}

// rows returns the lines of the active tab.
func (m Model) rows() []string {
	if m.result == nil {
		return nil
	}

	if m.tab == tabDiffs {
		return m.result.Changed
	}

	unique := m.result.Unique()
	rows := make([]string, 0, len(unique))
	for _, e := range unique {
		rows = append(rows, m.result.Label(e))
	}
	return rows
}

func (m Model) View() string {
	switch m.mode {
	case modePrompt:
		return m.promptView()
	case modeDiff:
		return m.diffView()
	default:
		return m.listView()
	}
}

func (m Model) promptView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("File extensions"))
	b.WriteString("\n\nComma-separated file name suffixes to compare:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("enter: scan  esc: cancel"))
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder

	unique, changed := 0, 0
	if m.result != nil {
		unique, changed = len(m.result.Unique()), len(m.result.Changed)
	}

	tabs := []string{
		fmt.Sprintf("Unique Files (%d)", unique),
		fmt.Sprintf("Differences (%d)", changed),
	}
	for i, t := range tabs {
		if tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (none)") + "\n")
	}

	cursor := m.cursor[m.tab]
	start, end := window(cursor, len(rows), m.height-chrome)
	for i := start; i < end; i++ {
		row := rows[i]
		if m.width > 4 {
			row = runewidth.Truncate(row, m.width-2, "…")
		}
		if i == cursor {
			b.WriteString(selectedStyle.Render("> "+row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.status + "\n")
	b.WriteString(helpStyle.Render("tab: switch  ↑/↓: move  enter: select  e: extensions  q: quit"))
	return b.String()
}

func (m Model) diffView() string {
	header := titleStyle.Render(m.title)
	footer := helpStyle.Render(fmt.Sprintf("esc: back  ↑/↓ pgup/pgdn: scroll  %3.f%%", m.view.ScrollPercent()*100))
	return header + "\n" + m.view.View() + "\n" + footer
}

// window returns the [start, end) slice of n rows that fits height lines and
// keeps cursor visible. A height below one shows every row.
func window(cursor, n, height int) (int, int) {
	if height < 1 || n <= height {
		return 0, n
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, start + height
}
