// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package settingspanel

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings active while the panel is open.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Direct  key.Binding
	Dismiss key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Dismiss}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Select, km.Direct, km.Dismiss}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Direct: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "run action"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// ShortcutKeyMap is the set of application wide shortcuts the panel
// documents in its legend. They are bound globally by the shortcuts
// package, not by the panel.
type ShortcutKeyMap struct {
	Accessibility   key.Binding
	NewConversation key.Binding
	ClosePanels     key.Binding
}

func (km ShortcutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Accessibility, km.NewConversation}
}

func (km ShortcutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Accessibility, km.NewConversation, km.ClosePanels}}
}

// *ShortcutKeyMap implements help.KeyMap
var _ help.KeyMap = (*ShortcutKeyMap)(nil)

// Most terminals send ctrl+j for ctrl+enter; ctrl+n is the fallback for
// those that send a plain enter.
var Shortcuts = ShortcutKeyMap{
	Accessibility: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "accessibility"),
	),
	NewConversation: key.NewBinding(
		key.WithKeys("ctrl+j", "ctrl+n"),
		key.WithHelp("Ctrl+Enter", "new conversation"),
	),
	ClosePanels: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close panels"),
	),
}

// LegendEntry is one line of the shortcut legend.
type LegendEntry struct {
	Key       string
	MessageID string
}

// Legend lists the documented shortcuts with the i18n IDs of their labels.
func (km ShortcutKeyMap) Legend() []LegendEntry {
	return []LegendEntry{
		{Key: km.Accessibility.Help().Key, MessageID: "shortcut.accessibility"},
		{Key: km.NewConversation.Help().Key, MessageID: "shortcut.new_conversation"},
		{Key: km.ClosePanels.Help().Key, MessageID: "shortcut.close_panels"},
	}
}
