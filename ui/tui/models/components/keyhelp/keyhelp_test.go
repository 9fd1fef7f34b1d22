// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "first")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "second")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "third")),
	}
}

func TestShortHelpFitsWidth(t *testing.T) {
	m := help.New()
	m.Width = 20

	v := ShortHelpView(m, bindings())
	if w := lipgloss.Width(v); w > 20 {
		t.Fatalf("expected width <= 20 got %d (%q)", w, v)
	}
	if !strings.Contains(v, "first") || !strings.Contains(v, m.Ellipsis) {
		t.Fatalf("expected first item and ellipsis, got %q", v)
	}
}

func TestShortHelpSkipsDisabled(t *testing.T) {
	m := help.New()
	m.Width = 80
	b := bindings()
	b[0].SetEnabled(false)

	v := ShortHelpView(m, b)
	if strings.HasPrefix(v, strings.TrimSpace(m.ShortSeparator)) || strings.Contains(v, "first") {
		t.Fatalf("unexpected view %q", v)
	}
}

func TestFullHelpSkipsEmptyGroups(t *testing.T) {
	m := help.New()
	m.Width = 80
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "gone"))
	disabled.SetEnabled(false)

	v := FullHelpView(m, [][]key.Binding{{disabled}, bindings()})
	if strings.Contains(v, "gone") || !strings.Contains(v, "third") {
		t.Fatalf("unexpected view %q", v)
	}
	if FullHelpView(m, nil) != "" {
		t.Fatal("expected empty view without groups")
	}
}
