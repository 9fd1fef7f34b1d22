// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package settingspanel

import tea "github.com/charmbracelet/bubbletea"

// Signals other components send to drive the panel without holding it.
type (
	OpenMsg    struct{}
	CloseMsg   struct{}
	TriggerMsg struct{}
)

func OpenCmd() tea.Cmd {
	return func() tea.Msg { return OpenMsg{} }
}

func CloseCmd() tea.Cmd {
	return func() tea.Msg { return CloseMsg{} }
}

func TriggerCmd() tea.Cmd {
	return func() tea.Msg { return TriggerMsg{} }
}
