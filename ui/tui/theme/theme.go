// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme holds the light and dark palettes of the shell.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a component renders with.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	OnAccent   lipgloss.Color
	Scrim      lipgloss.Color
}

var (
	Light = Palette{
		Background: lipgloss.Color("#FAF8FF"),
		Surface:    lipgloss.Color("#F5F0FF"),
		Border:     lipgloss.Color("#E8D5F5"),
		Text:       lipgloss.Color("#4A3B5C"),
		Muted:      lipgloss.Color("#8A7B9C"),
		Accent:     lipgloss.Color("#8655B1"),
		OnAccent:   lipgloss.Color("#FFFFFF"),
		Scrim:      lipgloss.Color("#DDDADA"),
	}
	Dark = Palette{
		Background: lipgloss.Color("#1A1625"),
		Surface:    lipgloss.Color("#2A2035"),
		Border:     lipgloss.Color("#3D2A4D"),
		Text:       lipgloss.Color("#E8D5F5"),
		Muted:      lipgloss.Color("#9C8AAE"),
		Accent:     lipgloss.Color("#B48AD9"),
		OnAccent:   lipgloss.Color("#1A1625"),
		Scrim:      lipgloss.Color("#3C3C3C"),
	}
	// high contrast variants keep only black, white and one accent
	LightHighContrast = Palette{
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#000000"),
		Accent:     lipgloss.Color("#0000CC"),
		OnAccent:   lipgloss.Color("#FFFFFF"),
		Scrim:      lipgloss.Color("#767676"),
	}
	DarkHighContrast = Palette{
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#000000"),
		Border:     lipgloss.Color("#FFFFFF"),
		Text:       lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#FFD700"),
		OnAccent:   lipgloss.Color("#000000"),
		Scrim:      lipgloss.Color("#767676"),
	}
)

// For picks the palette for the given theme flags.
func For(dark, highContrast bool) Palette {
	switch {
	case dark && highContrast:
		return DarkHighContrast
	case dark:
		return Dark
	case highContrast:
		return LightHighContrast
	default:
		return Light
	}
}
