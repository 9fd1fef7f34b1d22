// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package shortcuts

import (
	"runtime"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/ui/tui/models/components/settingspanel"
)

var (
	f1     = tea.KeyMsg{Type: tea.KeyF1}
	ctrlJ  = tea.KeyMsg{Type: tea.KeyCtrlJ}
	ctrlN  = tea.KeyMsg{Type: tea.KeyCtrlN}
	escKey = tea.KeyMsg{Type: tea.KeyEsc}
)

type calls struct {
	accessibility int
	clear         int
	other         int
}

func newPanel(c *calls) *settingspanel.Model {
	return settingspanel.New(settingspanel.Props{
		OnOpenAccessibility: func() tea.Cmd { c.accessibility++; return nil },
		OnClearChat:         func() tea.Cmd { c.clear++; return nil },
		OnToggleTTS:         func() tea.Cmd { c.other++; return nil },
		OnToggleDarkMode:    func() tea.Cmd { c.other++; return nil },
	})
}

func TestF1OpensAccessibilityWhileClosed(t *testing.T) {
	var c calls
	p := newPanel(&c)
	defer Register(p)()

	if _, ok := Handle(f1); !ok {
		t.Fatal("expected F1 handled")
	}
	if c.accessibility != 1 {
		t.Fatalf("expected accessibility once, got %d", c.accessibility)
	}
	if p.IsOpen() {
		t.Fatal("expected panel to stay closed")
	}
}

func TestF1ClosesOpenPanel(t *testing.T) {
	var c calls
	p := newPanel(&c)
	defer Register(p)()

	p.Open()
	Handle(f1)
	if c.accessibility != 1 || p.IsOpen() {
		t.Fatalf("expected accessibility and closed panel, got %+v open=%v", c, p.IsOpen())
	}
}

func TestNewConversation(t *testing.T) {
	var c calls
	p := newPanel(&c)
	defer Register(p)()

	for _, k := range []tea.KeyMsg{ctrlJ, ctrlN} {
		if _, ok := Handle(k); !ok {
			t.Fatalf("expected %s handled", k)
		}
	}
	if c.clear != 2 || c.other != 0 {
		t.Fatalf("expected two clears, got %+v", c)
	}
}

func TestEscOnlyWhileOpen(t *testing.T) {
	var c calls
	p := newPanel(&c)
	defer Register(p)()

	if _, ok := Handle(escKey); ok {
		t.Fatal("expected esc to pass through while closed")
	}

	p.Open()
	if _, ok := Handle(escKey); !ok {
		t.Fatal("expected esc handled while open")
	}
	if p.IsOpen() {
		t.Fatal("expected panel closed")
	}
	if c != (calls{}) {
		t.Fatalf("expected no callbacks, got %+v", c)
	}
}

func TestOtherKeysPassThrough(t *testing.T) {
	var c calls
	p := newPanel(&c)
	defer Register(p)()

	if _, ok := Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}); ok {
		t.Fatal("expected plain key to pass through")
	}
}

func TestUnregister(t *testing.T) {
	var c calls
	p := newPanel(&c)
	unregister := Register(p)
	unregister()

	if _, ok := Handle(f1); ok {
		t.Fatal("expected nothing handled after unregister")
	}
	if c.accessibility != 0 {
		t.Fatalf("expected no callback, got %d", c.accessibility)
	}
}

func TestStaleUnregisterKeepsNewer(t *testing.T) {
	var c1, c2 calls
	first := Register(newPanel(&c1))
	p2 := newPanel(&c2)
	defer Register(p2)()

	first()
	Handle(f1)
	if c2.accessibility != 1 || c1.accessibility != 0 {
		t.Fatalf("expected newer panel to keep shortcuts, got %+v %+v", c1, c2)
	}
}

func TestCollectedPanelIsDropped(t *testing.T) {
	var c calls
	defer Register(newPanel(&c))()

	runtime.GC()
	runtime.GC()

	if _, ok := Registered(); ok {
		t.Skip("panel not collected yet")
	}
	if _, ok := Handle(f1); ok {
		t.Fatal("expected nothing handled for a collected panel")
	}
}
