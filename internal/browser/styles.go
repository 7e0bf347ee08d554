// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browser

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#b08800", Dark: "#f6be00"}
	muted  = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#8a8a8a"}

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent)
	selectedStyle  = lipgloss.NewStyle().Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(accent)
	helpStyle      = lipgloss.NewStyle().Foreground(muted)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d70000"))
)
