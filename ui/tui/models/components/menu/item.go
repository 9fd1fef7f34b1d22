// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/ui/tui/theme"
)

func WithItem(id string, name string) Item {
	return Item{
		Id:   id,
		Name: name,
	}
}

// Item is one selectable row. Value is drawn right aligned next to the
// name, Cmd replaces the default ItemSelected message.
type Item struct {
	Id    string
	Name  string
	Value string
	Cmd   tea.Cmd
}

func (i Item) View(isActive bool, width int, p theme.Palette) string {
	style := lipgloss.NewStyle().Foreground(p.Text)
	if isActive {
		style = style.Foreground(p.OnAccent).Background(p.Accent)
	}

	content := i.Name
	if i.Value != "" {
		gap := max(width-lipgloss.Width(i.Name)-lipgloss.Width(i.Value), 1)
		content = i.Name + strings.Repeat(" ", gap) + i.Value
	}
	return style.Width(max(width, lipgloss.Width(content))).Render(content)
}

type ItemSelected struct {
	Id string
}
