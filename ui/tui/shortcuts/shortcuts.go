// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package shortcuts binds the application wide keys documented in the
// settings panel legend. At most one panel is registered at a time and the
// registry only holds it weakly, so a dropped panel stops receiving
// shortcuts even if nobody unregistered it.
package shortcuts

import (
	"sync"
	"weak"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/ui/tui/models/components/settingspanel"
)

var (
	mu         sync.Mutex
	registered weak.Pointer[settingspanel.Model]
	generation uint64
)

// Register makes panel the target of the global shortcuts, replacing any
// earlier registration. The returned function only removes this exact
// registration.
func Register(panel *settingspanel.Model) (unregister func()) {
	mu.Lock()
	defer mu.Unlock()

	generation++
	gen := generation
	registered = weak.Make(panel)
	logging.Debugf("shortcuts: registered panel (generation %d)", gen)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if generation != gen {
			return
		}
		registered = weak.Pointer[settingspanel.Model]{}
		logging.Debugf("shortcuts: unregistered panel (generation %d)", gen)
	}
}

// Registered returns the live panel, if any.
func Registered() (*settingspanel.Model, bool) {
	mu.Lock()
	defer mu.Unlock()
	p := registered.Value()
	return p, p != nil
}

// Handle runs the shortcut bound to msg. F1 and Ctrl+Enter go through the
// panel's dispatch path and so also close it; Esc is only consumed while
// the panel is open.
func Handle(msg tea.KeyMsg) (tea.Cmd, bool) {
	panel, ok := Registered()
	if !ok {
		return nil, false
	}

	switch {
	case key.Matches(msg, settingspanel.Shortcuts.Accessibility):
		return panel.Dispatch(settingspanel.ActionOpenAccessibility), true
	case key.Matches(msg, settingspanel.Shortcuts.NewConversation):
		return panel.Dispatch(settingspanel.ActionClearChat), true
	case key.Matches(msg, settingspanel.Shortcuts.ClosePanels):
		if !panel.IsOpen() {
			return nil, false
		}
		return panel.Dismiss(), true
	}
	return nil, false
}
