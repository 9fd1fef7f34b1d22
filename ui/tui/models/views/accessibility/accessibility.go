// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package accessibility is the popup listing the accessibility toggles.
// It only reports which toggle was chosen; the host owns the settings.
package accessibility

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/components/menu"
	"github.com/senachat/sena/ui/tui/models/components/popup"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
)

// Setting names one accessibility toggle.
type Setting string

const (
	SettingTTS          Setting = "tts"
	SettingHighContrast Setting = "high_contrast"
	SettingLargeText    Setting = "large_text"
	SettingReduceMotion Setting = "reduce_motion"
)

// ToggleMsg asks the host to flip a setting.
type ToggleMsg struct {
	Setting Setting
}

// Apply flips s in settings.
func (s Setting) Apply(settings model.AccessibilitySettings) model.AccessibilitySettings {
	switch s {
	case SettingTTS:
		settings.TTSEnabled = !settings.TTSEnabled
	case SettingHighContrast:
		settings.HighContrast = !settings.HighContrast
	case SettingLargeText:
		settings.LargeText = !settings.LargeText
	case SettingReduceMotion:
		settings.ReduceMotion = !settings.ReduceMotion
	}
	return settings
}

type KeyMap struct {
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Close} }
func (km KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Close}} }

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

type Model struct {
	menu     *menu.Model
	settings model.AccessibilitySettings
	palette  theme.Palette
}

func New(settings model.AccessibilitySettings, p theme.Palette) *Model {
	m := &Model{menu: menu.New()}
	m.SetPalette(p)
	m.SetSettings(settings)
	return m
}

func (m *Model) SetPalette(p theme.Palette) {
	m.palette = p
	m.menu.Palette = p
}

// SetSettings redraws the toggles with their current values.
func (m *Model) SetSettings(s model.AccessibilitySettings) {
	m.settings = s
	m.menu.SetItems(
		m.item(SettingTTS, "accessibility.tts", s.TTSEnabled),
		m.item(SettingHighContrast, "accessibility.high_contrast", s.HighContrast),
		m.item(SettingLargeText, "accessibility.large_text", s.LargeText),
		m.item(SettingReduceMotion, "accessibility.reduce_motion", s.ReduceMotion),
	)
}

func (m *Model) item(s Setting, messageID string, on bool) menu.Item {
	state := i18n.T("accessibility.off")
	if on {
		state = i18n.T("accessibility.on")
	}
	return menu.Item{
		Id:    string(s),
		Name:  i18n.T(messageID),
		Value: "[" + state + "]",
		Cmd:   func() tea.Msg { return ToggleMsg{Setting: s} },
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultKeyMap.Close) {
		return popup.Close()
	}
	return m.menu.Update(msg)
}

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.palette.Accent).Render(i18n.T("accessibility.title"))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.menu.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.menu.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
}

func (m *Model) Blur() {
	m.menu.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
