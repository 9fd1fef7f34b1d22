// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a vertical list of selectable items.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
	"github.com/senachat/sena/util/slicest"
)

type Model struct {
	Items   []Item
	Cursor  int
	Palette theme.Palette
	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:   items,
		Palette: theme.Light,
	}
}

// SetItems swaps the items and keeps the cursor in range.
func (m *Model) SetItems(items ...Item) {
	m.Items = items
	m.Cursor = util.Clamp(0, m.Cursor, max(len(items)-1, 0))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if !m.focused || len(m.Items) == 0 {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			m.Cursor = max(m.Cursor-1, 0)
		case key.Matches(msg, DefaultKeyMap.Down):
			m.Cursor = min(m.Cursor+1, len(m.Items)-1)
		case key.Matches(msg, DefaultKeyMap.Select):
			return m.selectCmd()
		}
	}
	return nil
}

func (m *Model) selectCmd() tea.Cmd {
	item := m.Items[m.Cursor]
	if item.Cmd != nil {
		return item.Cmd
	}
	return func() tea.Msg { return ItemSelected{Id: item.Id} }
}

func (m Model) width() int {
	w := slicest.Reduce(m.Items, func(i Item, w int) int {
		return max(w, lipgloss.Width(i.Name)+lipgloss.Width(i.Value)+2)
	})
	if m.size.Width > 0 {
		w = min(w, m.size.Width)
	}
	return w
}

func (m Model) view() string {
	width := m.width()
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(m.Items, func(i int, item Item) string {
			return item.View(m.focused && i == m.Cursor, width, m.Palette)
		})...,
	)

	// keep the cursor visible when the list is taller than the view
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		lines := strings.Split(view, "\n")
		top := util.Clamp(0, m.Cursor-m.size.Height/2, height-m.size.Height)
		view = strings.Join(lines[top:top+m.size.Height], "\n")
	}
	return view
}

func (m Model) View() string {
	style := lipgloss.NewStyle()
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}
	if m.size.Height > 0 {
		style = style.MaxHeight(m.size.Height)
	}
	return style.Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
