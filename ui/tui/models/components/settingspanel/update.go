// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package settingspanel

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/ui/tui/util"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// Update expects screen-sized tea.WindowSizeMsg and absolute mouse
// coordinates; the panel is drawn against the right edge.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg.(type) {
	case OpenMsg:
		return m.Open()
	case CloseMsg:
		return m.Close()
	case TriggerMsg:
		return m.Trigger()
	}

	if !m.IsOpen() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, DefaultKeyMap.Down):
		m.cursor = min(m.cursor+1, len(Actions)-1)
	case key.Matches(msg, DefaultKeyMap.Select):
		return m.Dispatch(Actions[m.cursor])
	case key.Matches(msg, DefaultKeyMap.Direct):
		return m.Dispatch(Actions[int(msg.String()[0]-'1')])
	case key.Matches(msg, DefaultKeyMap.Dismiss):
		return m.Dismiss()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	// anything left of the sheet is the scrim
	if msg.X < m.size.Width-m.width() {
		return m.Dismiss()
	}
	if a, ok := m.actionAt(msg.Y); ok {
		return m.Dispatch(a)
	}
	return nil
}

// Cursor is the index of the highlighted action.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
