// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI of Sena. Presentation and input
// handling live here; persistence is provided by the store passed to Run.
package tui
