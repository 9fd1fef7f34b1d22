// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/ui/tui/models/components/keyhelp"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
)

// Model shows the bindings of the focused component followed by the
// always active base bindings, plus a transient status line.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	palette    theme.Palette
	status     string
}

// StatusMsg replaces the status line. An empty text clears it.
type StatusMsg string

func SetStatus(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(text) }
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
		palette:    theme.Light,
	}
}

func (m *Model) SetPalette(p theme.Palette) {
	m.palette = p
	m.help.SetPalette(p)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject baseKeyMap
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = string(msg)
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	if m.status == "" {
		return m.help.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(m.palette.Accent).Render(m.status),
		m.help.View(),
	)
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(m.palette.Border).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Status is the current status line.
func (m *Model) Status() string { return m.status }
