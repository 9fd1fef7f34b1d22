// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package settingspanel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/internal/model"
)

// State is the open/closed state of the panel.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Action is one of the four things the panel can ask the host to do.
type Action int

// Display order of the panel rows.
const (
	ActionToggleTTS Action = iota
	ActionToggleDarkMode
	ActionOpenAccessibility
	ActionClearChat
)

// Actions lists every action in display order.
var Actions = []Action{
	ActionToggleTTS,
	ActionToggleDarkMode,
	ActionOpenAccessibility,
	ActionClearChat,
}

func (a Action) String() string {
	switch a {
	case ActionToggleTTS:
		return "toggle-tts"
	case ActionToggleDarkMode:
		return "toggle-dark-mode"
	case ActionOpenAccessibility:
		return "open-accessibility"
	case ActionClearChat:
		return "clear-chat"
	}
	return "unknown"
}

// Callback is a host supplied action. It runs synchronously; the returned
// command is handed to the runtime without being looked at.
type Callback func() tea.Cmd

// Props is everything the host passes in. The panel never caches anything
// derived from it.
type Props struct {
	IsDarkMode bool
	Settings   model.AccessibilitySettings

	OnToggleDarkMode    Callback
	OnToggleTTS         Callback
	OnOpenAccessibility Callback
	OnClearChat         Callback
}

func (p Props) callback(a Action) Callback {
	switch a {
	case ActionToggleTTS:
		return p.OnToggleTTS
	case ActionToggleDarkMode:
		return p.OnToggleDarkMode
	case ActionOpenAccessibility:
		return p.OnOpenAccessibility
	case ActionClearChat:
		return p.OnClearChat
	}
	return nil
}

// Observer is notified synchronously after every state transition.
type Observer func(State) tea.Cmd
