// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides board configuration loading for jobdeck.
//
// Configuration is loaded from a single YAML file specified by:
//   - JOBDECK_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no discovery fallbacks: when neither is set, the
// built-in defaults apply (the standard five-status registry and the
// documented sort defaults), so the binary runs with zero setup. When
// a file IS given, it is authoritative: the registry it defines
// replaces the default entirely and is validated at load time.
package config
