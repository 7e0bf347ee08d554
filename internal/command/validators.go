// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/attrs"
	"github.com/tfctl/dirdiff/internal/scan"
)

// ErrMissingInput reports that a command was not given both directories or a
// usable extension list.
var ErrMissingInput = errors.New("missing input")

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the flags shared by the listing commands that
// need more than a per-flag validator.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	var al attrs.AttrList
	if err := al.Set(c.String("attrs")); err != nil {
		return fmt.Errorf("--attrs: %w", err)
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// ContextValidator rejects negative context line counts.
func ContextValidator(value any) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("context must be an integer, got %T", value)
	}
	if n < 0 {
		return fmt.Errorf("context must not be negative, got %d", n)
	}
	return nil
}

// ExtValidator parses value as an extension list. An empty list is missing
// input.
func ExtValidator(value any) error {
	s, _ := value.(string)
	if _, err := scan.ParseExtensions(s); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	return nil
}
