// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/browser"
	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/meta"
)

// uiCommandAction is the action handler for the "ui" subcommand. It opens the
// interactive browser over the two roots, prompting for the extension list
// first when --ext is not given.
func uiCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "ui"

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("ui requires an interactive terminal")
	}

	s, err := NewSession(cmd, false)
	if err != nil {
		return err
	}

	model, err := browser.New(s)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}

	if bm, ok := final.(browser.Model); ok {
		if err := bm.Err(); err != nil {
			if errors.Is(err, browser.ErrCancelled) {
				return fmt.Errorf("%w: %w", ErrMissingInput, err)
			}
			return err
		}
	}

	return nil
}

// uiCommandBuilder constructs the cli.Command for "ui".
func uiCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "ui",
		Usage:     "browse unique and changed files interactively",
		UsageText: "dirdiff ui DIR_A DIR_B [--ext py,txt] [options]",
		Action:    uiCommandAction,
		Meta:      meta,
	}).Build()
}
