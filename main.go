// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Sena.
//
// Usage:
//
//	go run . [flags]
//	./sena [flags]
//
// This launches the Sena TUI. See --help for the other commands.
package main

import (
	"os"

	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("sena: %v", err)
		os.Exit(1)
	}
}
