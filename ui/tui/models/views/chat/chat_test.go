// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/views/footer"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newFocused() *Model {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m.Focus()
	return m
}

func TestSendEmitsTrimmedText(t *testing.T) {
	m := newFocused()
	typeText(m, "  hello  ")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SendMsg)
	if !ok || msg.Text != "hello" {
		t.Fatalf("unexpected msg %#v", msg)
	}
	if m.input.Value() != "" {
		t.Fatal("expected input reset after send")
	}
}

func TestSendIgnoresBlank(t *testing.T) {
	m := newFocused()
	typeText(m, "   ")
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected no command for blank input")
	}
}

func TestBlurredIgnoresEnter(t *testing.T) {
	m := New()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected no command while blurred")
	}
}

func TestCopyLastReply(t *testing.T) {
	var copied string
	orig := writeClipboard
	defer func() { writeClipboard = orig }()
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := newFocused()
	m.SetMessages([]model.ChatMessage{
		{Role: model.RoleAssistant, Content: "first"},
		{Role: model.RoleAssistant, Content: "second"},
		{Role: model.RoleUser, Content: "question"},
	})

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "second" {
		t.Fatalf("expected last reply copied, got %q", copied)
	}
	if status, ok := cmd().(footer.StatusMsg); !ok || string(status) != i18n.T("chat.copied") {
		t.Fatalf("unexpected status %#v", status)
	}
}

func TestCopyFailureReportsStatus(t *testing.T) {
	orig := writeClipboard
	defer func() { writeClipboard = orig }()
	writeClipboard = func(string) error { return errors.New("no clipboard") }

	m := newFocused()
	m.Append(model.ChatMessage{Role: model.RoleAssistant, Content: "hi"})

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if status, ok := cmd().(footer.StatusMsg); !ok || string(status) != i18n.T("chat.copy_failed") {
		t.Fatalf("unexpected status %#v", status)
	}
}

func TestCopyWithoutReply(t *testing.T) {
	m := newFocused()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY}); cmd != nil {
		t.Fatal("expected nothing to copy")
	}
}

func TestViewShowsTranscript(t *testing.T) {
	i18n.SetLang("en")
	m := newFocused()
	if !strings.Contains(m.View(), i18n.T("chat.empty")) {
		t.Fatal("expected empty hint")
	}

	m.Append(model.ChatMessage{Role: model.RoleUser, Content: "ping"})
	m.Append(model.ChatMessage{Role: model.RoleAssistant, Content: "pong"})
	v := m.View()
	for _, want := range []string{"ping", "pong", i18n.T("chat.you")} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in view:\n%s", want, v)
		}
	}
}
