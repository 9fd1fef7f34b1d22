// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/ui/tui/models/components/settingspanel"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
)

const logo string = "🌸 "

// Model is the top bar. Its right hand side is the trigger of the
// settings panel.
type Model struct {
	size    util.Size
	palette theme.Palette
	voice   bool
}

func New() *Model {
	return &Model{palette: theme.Light}
}

func (m *Model) SetPalette(p theme.Palette) { m.palette = p }
func (m *Model) SetVoice(on bool)           { m.voice = on }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(tea.MouseMsg); ok &&
		msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		m.onTrigger(msg.X, msg.Y) {
		return settingspanel.TriggerCmd()
	}
	return nil
}

func (m Model) trigger() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(m.palette.OnAccent).
		Background(m.palette.Accent).
		Padding(0, 1).
		Render("☰ " + i18n.T("header.menu"))
}

func (m Model) onTrigger(x, y int) bool {
	w := lipgloss.Width(m.trigger())
	return y == 0 && x >= m.size.Width-w && x < m.size.Width
}

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.palette.Accent).Render(logo + i18n.T("app.title"))

	voice := i18n.T("header.voice_off")
	if m.voice {
		voice = i18n.T("header.voice_on")
	}
	status := lipgloss.NewStyle().Foreground(m.palette.Muted).Render(" · " + voice)

	left := title + status
	trigger := m.trigger()
	gap := max(m.size.Width-lipgloss.Width(left)-lipgloss.Width(trigger), 1)

	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(m.palette.Border).
		Render(lipgloss.JoinHorizontal(lipgloss.Top,
			left,
			lipgloss.NewStyle().Width(gap).Render(""),
			trigger,
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
