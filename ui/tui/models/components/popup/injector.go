// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup layers modal components over a child view. Popups stack;
// only the topmost one receives input.
package popup

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child   *util.Model
	popups  []popup
	size    util.Size
	palette theme.Palette
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child:   child,
		palette: theme.Light,
	}
}

// SetPalette changes the colors of the popup frame and scrim.
func (m *Injector) SetPalette(p theme.Palette) {
	m.palette = p
}

// Active reports whether a popup is shown.
func (m *Injector) Active() bool {
	return len(m.popups) > 0
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if m.Active() {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	return (*m.activeModel()).Update(msg)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if !m.Active() {
		return childView
	}

	popupView := lipgloss.
		NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.palette.Accent).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	return util.PlaceOverlay(
		util.Dim(childView, m.palette.Scrim),
		popupView,
		lipgloss.Center, lipgloss.Center,
	)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*p.model).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if !m.Active() {
		return nil
	}
	m.Blur()

	var onCloseCmd tea.Cmd
	if top := m.popups[len(m.popups)-1]; top.onClose != nil {
		onCloseCmd = top.onClose(top.model)
	}
	m.popups = m.popups[:len(m.popups)-1]

	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if m.Active() {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
