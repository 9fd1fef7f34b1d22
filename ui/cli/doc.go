// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Sena using Cobra.
// It loads configuration, opens the store and either starts the TUI or runs
// one of the maintenance commands. CLI code stays thin and delegates to the
// store and the TUI packages.
package cli
