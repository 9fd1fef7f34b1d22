// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package settingspanel implements the slide-in settings menu of the chat
// shell. The panel owns only its open/closed state; everything it shows
// comes from Props and every action is a host callback. Any dispatched
// action closes the panel.
package settingspanel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/ui/tui/util"
)

type observer struct {
	id int
	fn Observer
}

type Model struct {
	props  Props
	state  State
	cursor int

	focused bool
	size    util.Size

	observers []observer
	nextID    int
}

// New returns a closed panel.
func New(props Props) *Model {
	return &Model{props: props}
}

func (m *Model) State() State { return m.state }
func (m *Model) IsOpen() bool { return m.state == StateOpen }
func (m *Model) Props() Props { return m.props }

// SetProps replaces the host inputs; the next View reads them.
func (m *Model) SetProps(p Props) {
	m.props = p
}

// Subscribe registers fn for state transitions and returns a function
// removing it again.
func (m *Model) Subscribe(fn Observer) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.observers = append(m.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

// Trigger handles activation of the trigger control. Triggering an open
// panel changes nothing.
func (m *Model) Trigger() tea.Cmd {
	return m.transition(StateOpen)
}

// Open is the external open signal.
func (m *Model) Open() tea.Cmd {
	return m.transition(StateOpen)
}

// Close is the external close signal.
func (m *Model) Close() tea.Cmd {
	return m.transition(StateClosed)
}

// Dismiss closes the panel on a dismiss gesture (esc, scrim click)
// without invoking any callback.
func (m *Model) Dismiss() tea.Cmd {
	return m.transition(StateClosed)
}

// Dispatch runs the host callback for a and closes the panel.
func (m *Model) Dispatch(a Action) tea.Cmd {
	return m.dispatchAndClose(m.props.callback(a))
}

// dispatchAndClose is the only path from an action to its callback: the
// callback runs first, then the panel closes whatever the callback did.
// A panicking callback leaves the panel open.
func (m *Model) dispatchAndClose(cb Callback) tea.Cmd {
	var cmd tea.Cmd
	if cb != nil {
		cmd = cb()
	}
	return tea.Batch(cmd, m.transition(StateClosed))
}

func (m *Model) transition(to State) tea.Cmd {
	if m.state == to {
		return nil
	}
	m.state = to
	if to == StateOpen {
		m.cursor = 0
	}

	// copy so observers may unsubscribe while being notified
	observers := append([]observer(nil), m.observers...)
	cmds := make([]tea.Cmd, 0, len(observers))
	for _, o := range observers {
		cmds = append(cmds, o.fn(to))
	}
	return tea.Batch(cmds...)
}
