// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package settingspanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/util/slicest"
)

// Width is the preferred width of the sheet including its border.
const Width = 48

const (
	sheetPaddingTop = 1
	sheetPaddingX   = 2
)

// Label is the row label of a for the given props. It only depends on its
// arguments.
func Label(a Action, p Props) string {
	switch a {
	case ActionToggleTTS:
		if p.Settings.TTSEnabled {
			return i18n.T("panel.voice.disable")
		}
		return i18n.T("panel.voice.enable")
	case ActionToggleDarkMode:
		if p.IsDarkMode {
			return i18n.T("panel.theme.light")
		}
		return i18n.T("panel.theme.dark")
	case ActionOpenAccessibility:
		return i18n.T("panel.accessibility.label")
	case ActionClearChat:
		return i18n.T("panel.clear.label")
	}
	return ""
}

// Hint is the secondary line of a row.
func Hint(a Action) string {
	switch a {
	case ActionToggleTTS:
		return i18n.T("panel.voice.hint")
	case ActionToggleDarkMode:
		return i18n.T("panel.theme.hint")
	case ActionOpenAccessibility:
		return i18n.T("panel.accessibility.hint")
	case ActionClearChat:
		return i18n.T("panel.clear.hint")
	}
	return ""
}

// Icon mirrors the label: it shows the current voice state and the theme
// the row switches to.
func Icon(a Action, p Props) string {
	switch a {
	case ActionToggleTTS:
		if p.Settings.TTSEnabled {
			return "🔊"
		}
		return "🔇"
	case ActionToggleDarkMode:
		if p.IsDarkMode {
			return "☀"
		}
		return "☾"
	case ActionOpenAccessibility:
		return "♿"
	case ActionClearChat:
		return "?"
	}
	return " "
}

func (m Model) palette() theme.Palette {
	return theme.For(m.props.IsDarkMode, m.props.Settings.HighContrast)
}

func (m Model) width() int {
	if m.size.Width > 0 {
		return min(Width, m.size.Width)
	}
	return Width
}

func (m Model) innerWidth() int {
	return max(m.width()-1-2*sheetPaddingX, 1)
}

func (m Model) renderHeader(p theme.Palette) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(i18n.T("panel.title"))
	desc := lipgloss.NewStyle().Foreground(p.Muted).Width(m.innerWidth()).Render(i18n.T("panel.description"))
	return lipgloss.JoinVertical(lipgloss.Left, title, desc, "")
}

func (m Model) renderRow(i int, a Action, p theme.Palette) string {
	active := i == m.cursor

	labelStyle := lipgloss.NewStyle().Bold(true)
	borderColor := p.Border
	if active {
		labelStyle = labelStyle.Foreground(p.Accent)
		borderColor = p.Accent
	}

	text := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(Label(a, m.props)),
		lipgloss.NewStyle().Foreground(p.Muted).Render(Hint(a)),
	)
	content := lipgloss.JoinHorizontal(lipgloss.Top, Icon(a, m.props)+"  ", text)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.innerWidth() - 2).
		Render(content)
}

func (m Model) renderLegend(p theme.Palette) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	lines := slicest.Map(Shortcuts.Legend(), func(e LegendEntry) string {
		return fmt.Sprintf("%s - %s", keyStyle.Render(e.Key), i18n.T(e.MessageID))
	})
	lines = append([]string{i18n.T("panel.shortcuts.title")}, lines...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface).
		Padding(0, 1).
		Width(m.innerWidth() - 2).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// actionAt maps a screen row to the action drawn there.
func (m Model) actionAt(y int) (Action, bool) {
	p := m.palette()
	top := sheetPaddingTop + lipgloss.Height(m.renderHeader(p))
	for i, a := range Actions {
		h := lipgloss.Height(m.renderRow(i, a, p))
		if y >= top && y < top+h {
			return a, true
		}
		top += h
	}
	return 0, false
}

// View renders the sheet, or nothing while closed. Labels are recomputed
// from the current props on every call.
func (m Model) View() string {
	if !m.IsOpen() {
		return ""
	}
	p := m.palette()

	parts := []string{m.renderHeader(p)}
	parts = append(parts, slicest.MapI(Actions, func(i int, a Action) string {
		return m.renderRow(i, a, p)
	})...)
	parts = append(parts,
		lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", m.innerWidth())),
		m.renderLegend(p),
	)

	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Border).
		Background(p.Background).
		Foreground(p.Text).
		Padding(sheetPaddingTop, sheetPaddingX).
		Width(m.width() - 1)
	if m.size.Height > 0 {
		style = style.Height(m.size.Height).MaxHeight(m.size.Height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
