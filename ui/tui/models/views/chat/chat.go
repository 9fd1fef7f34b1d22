// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package chat is the transcript of the current conversation together
// with the message input. It does not persist anything; sending a message
// only emits SendMsg for the host.
package chat

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/views/footer"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
	"github.com/senachat/sena/util/slicest"
)

// inputHeight is the input line plus its top border.
const inputHeight = 2

// SendMsg carries a trimmed, non-empty message the user submitted.
type SendMsg struct {
	Text string
}

var writeClipboard = clipboard.WriteAll

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	messages []model.ChatMessage

	palette   theme.Palette
	largeText bool
	size      util.Size
	focused   bool
}

func New() *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = i18n.T("chat.placeholder")
	input.CharLimit = 2000

	m := &Model{
		viewport: viewport.New(0, 0),
		input:    input,
		palette:  theme.Light,
	}
	// the input owns the arrow keys
	m.viewport.KeyMap = viewport.KeyMap{
		PageUp:   DefaultKeyMap.ScrollUp,
		PageDown: DefaultKeyMap.ScrollDown,
	}
	return m
}

// SetMessages replaces the transcript and scrolls to its end.
func (m *Model) SetMessages(messages []model.ChatMessage) {
	m.messages = append([]model.ChatMessage(nil), messages...)
	m.refresh()
}

// Append adds a message to the end of the transcript.
func (m *Model) Append(msg model.ChatMessage) {
	m.messages = append(m.messages, msg)
	m.refresh()
}

func (m *Model) Messages() []model.ChatMessage {
	return m.messages
}

func (m *Model) SetPalette(p theme.Palette) {
	m.palette = p
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(p.Accent)
	m.input.TextStyle = lipgloss.NewStyle().Foreground(p.Text)
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Muted)
	m.refresh()
}

// SetLargeText spaces the transcript out for readability.
func (m *Model) SetLargeText(on bool) {
	m.largeText = on
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m Model) render() string {
	if len(m.messages) == 0 {
		return lipgloss.NewStyle().Foreground(m.palette.Muted).Render(i18n.T("chat.empty"))
	}

	width := max(m.viewport.Width, 1)
	gap := "\n"
	if m.largeText {
		gap = "\n\n"
	}
	return strings.Join(slicest.Map(m.messages, func(msg model.ChatMessage) string {
		return m.renderMessage(msg, width)
	}), gap)
}

func (m Model) renderMessage(msg model.ChatMessage, width int) string {
	author := i18n.T("app.title")
	authorStyle := lipgloss.NewStyle().Bold(true).Foreground(m.palette.Accent)
	if msg.Role == model.RoleUser {
		author = i18n.T("chat.you")
		authorStyle = authorStyle.Foreground(m.palette.Text)
	}

	body := lipgloss.NewStyle().
		Foreground(m.palette.Text).
		Width(width).
		Bold(m.largeText).
		Render(msg.Content)
	return lipgloss.JoinVertical(lipgloss.Left, authorStyle.Render(author), body)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.viewport.Width = m.size.Width
		m.viewport.Height = max(m.size.Height-inputHeight, 0)
		m.input.Width = max(m.size.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.refresh()
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, DefaultKeyMap.Send):
			return m.send()
		case key.Matches(msg, DefaultKeyMap.Copy):
			return m.copyLastReply()
		case key.Matches(msg, DefaultKeyMap.ScrollUp, DefaultKeyMap.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) send() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.input.Reset()
	return func() tea.Msg { return SendMsg{Text: text} }
}

func (m *Model) copyLastReply() tea.Cmd {
	reply, ok := model.LastOf(m.messages, model.RoleAssistant)
	if !ok {
		return nil
	}
	if err := writeClipboard(reply.Content); err != nil {
		logging.Warnf("chat: copy to clipboard: %v", err)
		return footer.SetStatus(i18n.T("chat.copy_failed"))
	}
	return footer.SetStatus(i18n.T("chat.copied"))
}

func (m Model) View() string {
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(m.palette.Border).
		Width(m.size.Width).
		Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), input)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.input.Focus(), DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
