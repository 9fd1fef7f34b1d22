// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings of the focused component.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// fit keeps as many parts as fit into width and replaces the rest with the
// ellipsis tail, if that still fits.
func fit(m help.Model, parts []string) []string {
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var out []string
	var used int
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		if i == len(parts)-1 {
			if used+partLen <= m.Width {
				out = append(out, part)
			} else if used+tailLen <= m.Width {
				out = append(out, tail)
			}
			break
		}
		if used+partLen+tailLen > m.Width {
			out = append(out, tail)
			break
		}
		used += partLen
		out = append(out, part)
	}
	return out
}

// ShortHelpView replaces help.Model.ShortHelpView, which overflows its
// width and puts separators before disabled bindings.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	if len(items) == 0 {
		return ""
	}
	return strings.Join(fit(m, items), "")
}

// FullHelpView replaces help.Model.FullHelpView with the same fitting
// rules as ShortHelpView. Groups without enabled bindings are skipped.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}
