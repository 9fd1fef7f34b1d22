// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay splices fg into bg at the given horizontal and vertical
// position. fg is clipped to the dimensions of bg.
func PlaceOverlay(bg, fg string, hPos, vPos lipgloss.Position) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	offsetLeft := int(float64(bgWidth-fgWidth) * float64(hPos))
	offsetTop := int(float64(bgHeight-fgHeight) * float64(vPos))

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i := range fgLines {
		row := i + offsetTop
		if row >= len(bgLines) {
			break
		}
		left := ansi.Truncate(bgLines[row], offsetLeft, "")
		// pad short background lines so fg lands at its column
		if w := ansi.StringWidth(left); w < offsetLeft {
			left += strings.Repeat(" ", offsetLeft-w)
		}
		right := ansi.TruncateLeft(bgLines[row], offsetLeft+fgWidth, "")
		bgLines[row] = left + fgLines[i] + right
	}

	return strings.Join(bgLines, "\n")
}

// Dim strips the styling of a view and redraws it in a muted color, used
// as the scrim behind overlays.
func Dim(view string, color lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().Foreground(color).Render(ansi.Strip(view))
}
