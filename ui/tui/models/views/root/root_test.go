// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/internal/db"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/components/settingspanel"
	"github.com/senachat/sena/ui/tui/models/views/accessibility"
	"github.com/senachat/sena/ui/tui/models/views/chat"
	"github.com/senachat/sena/ui/tui/shortcuts"
	"github.com/senachat/sena/ui/tui/util"
)

func newStore(t *testing.T) db.Store {
	t.Helper()
	s, err := db.New(context.Background(), "sqlite", "file:root_"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestModel(t *testing.T) (*Model, db.Store) {
	t.Helper()
	i18n.SetLang("en")
	store := newStore(t)
	session, err := LoadSession(context.Background(), store, model.Preferences{Language: "en"})
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	m := New(context.Background(), session)
	m.unregister = shortcuts.Register(m.panel)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not block.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestTriggerOpensPanel(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.panel.IsOpen() {
		t.Fatal("expected panel open")
	}

	var announced bool
	for _, msg := range collect(cmd) {
		if a, ok := msg.(util.AnnounceKeyMapMsg); ok {
			if _, ok := a.KeyMap.(settingspanel.KeyMap); ok {
				announced = true
			}
		}
		m.Update(msg)
	}
	if !announced {
		t.Fatal("expected the panel keymap to be announced")
	}
	if got := m.titleHandler.Title(); !strings.HasSuffix(got, " | "+i18n.T("header.menu")) {
		t.Fatalf("unexpected title %q", got)
	}
	if !strings.Contains(m.View(), settingspanel.Label(settingspanel.ActionToggleTTS, m.panel.Props())) {
		t.Fatal("expected panel drawn over the shell")
	}
}

func TestToggleTTSPersistsAndCloses(t *testing.T) {
	m, store := newTestModel(t)
	m.panel.Open()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})

	if m.panel.IsOpen() {
		t.Fatal("expected panel closed")
	}
	if !m.session.Prefs.Accessibility.TTSEnabled || !m.panel.Props().Settings.TTSEnabled {
		t.Fatal("expected tts enabled in session and panel props")
	}
	prefs, ok, err := store.LoadPreferences(context.Background())
	if err != nil || !ok || !prefs.Accessibility.TTSEnabled {
		t.Fatalf("expected stored tts, got %+v ok=%v err=%v", prefs, ok, err)
	}
}

func TestToggleDarkModeUpdatesLabel(t *testing.T) {
	m, _ := newTestModel(t)
	m.panel.Open()
	m.panel.Dispatch(settingspanel.ActionToggleDarkMode)

	if !m.session.Prefs.DarkMode {
		t.Fatal("expected dark mode")
	}
	if got := settingspanel.Label(settingspanel.ActionToggleDarkMode, m.panel.Props()); got != i18n.T("panel.theme.light") {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestClearChatStartsNewConversation(t *testing.T) {
	m, store := newTestModel(t)
	ctx := context.Background()
	oldID := m.session.ConversationID

	m.Update(chat.SendMsg{Text: "hello"})
	if n := len(m.chat.Messages()); n != 3 {
		t.Fatalf("expected greeting, message and reply, got %d", n)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})

	if m.session.ConversationID == oldID {
		t.Fatal("expected a new conversation id")
	}
	old, err := store.Messages(ctx, oldID)
	if err != nil || len(old) != 0 {
		t.Fatalf("expected old conversation cleared, got %d err=%v", len(old), err)
	}
	msgs := m.chat.Messages()
	if len(msgs) != 1 || msgs[0].Content != i18n.T("chat.greeting") {
		t.Fatalf("expected only the greeting, got %+v", msgs)
	}
	current, _ := store.CurrentConversation(ctx)
	if current != m.session.ConversationID {
		t.Fatalf("expected stored conversation %q got %q", m.session.ConversationID, current)
	}
}

func TestF1OpensAccessibility(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if m.accessibility == nil {
		t.Fatal("expected accessibility popup requested")
	}
	if m.panel.IsOpen() {
		t.Fatal("expected panel to stay closed")
	}

	// a second request while shown is ignored
	first := m.accessibility
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if m.accessibility != first {
		t.Fatal("expected the same popup")
	}
}

func TestAccessibilityToggle(t *testing.T) {
	m, store := newTestModel(t)

	m.Update(accessibility.ToggleMsg{Setting: accessibility.SettingHighContrast})
	if !m.session.Prefs.Accessibility.HighContrast || !m.panel.Props().Settings.HighContrast {
		t.Fatal("expected high contrast on")
	}
	prefs, _, _ := store.LoadPreferences(context.Background())
	if !prefs.Accessibility.HighContrast {
		t.Fatal("expected high contrast stored")
	}
}

func TestEscClosesPanelWithoutCallbacks(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.session.Prefs
	oldID := m.session.ConversationID

	m.panel.Open()
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.panel.IsOpen() {
		t.Fatal("expected panel closed")
	}
	if m.session.Prefs != before || m.session.ConversationID != oldID {
		t.Fatal("expected no side effects")
	}
}

func TestScrimClickClosesPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m.panel.Open()

	m.Update(tea.MouseMsg{X: 1, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.panel.IsOpen() {
		t.Fatal("expected panel closed")
	}
}

func TestCloseUnregistersShortcuts(t *testing.T) {
	m, _ := newTestModel(t)
	m.Close()

	if _, ok := shortcuts.Handle(tea.KeyMsg{Type: tea.KeyF1}); ok {
		t.Fatal("expected shortcuts released")
	}
}
