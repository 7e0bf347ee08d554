// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for dirdiff's optional
// user configuration. The configuration is a YAML document named dirdiff.yaml
// located in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/dirdiff.yaml or $HOME/.config/dirdiff.yaml
//   - macOS: $HOME/Library/Application Support/dirdiff.yaml
//   - Windows: %APPDATA%/dirdiff.yaml
//
// DIRDIFF_CFG_FILE overrides the location. A missing file is not an error for
// the application; every setting has a flag or built-in default.
package config
