// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the host of the shell. It owns the session, hands the
// settings panel its props and callbacks, and binds the global keys.
package root

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/senachat/sena/buildvars"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/components/header"
	"github.com/senachat/sena/ui/tui/models/components/popup"
	"github.com/senachat/sena/ui/tui/models/components/settingspanel"
	"github.com/senachat/sena/ui/tui/models/components/stack"
	windowtitle "github.com/senachat/sena/ui/tui/models/helpers/title"
	"github.com/senachat/sena/ui/tui/models/views/accessibility"
	"github.com/senachat/sena/ui/tui/models/views/chat"
	"github.com/senachat/sena/ui/tui/models/views/footer"
	"github.com/senachat/sena/ui/tui/shortcuts"
	"github.com/senachat/sena/ui/tui/theme"
	"github.com/senachat/sena/ui/tui/util"
)

type Model struct {
	ctx     context.Context
	session *Session

	stack         *stack.Model
	header        *header.Model
	chat          *chat.Model
	injector      *popup.Injector
	footer        *util.Model
	panel         *settingspanel.Model
	accessibility *accessibility.Model
	titleHandler  *windowtitle.TitleHandler

	unregister  func()
	unsubscribe func()
}

func New(ctx context.Context, session *Session) *Model {
	_header := header.New()
	_chat := chat.New()
	_injector := popup.NewInjector(util.ModelPointer(_chat))
	_footer := footer.New(util.MergeKeyMaps(BaseKeyMap, settingspanel.Shortcuts))

	m := &Model{
		ctx:      ctx,
		session:  session,
		header:   _header,
		chat:     _chat,
		injector: _injector,
		footer:   util.ModelPointer(_footer),
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(_header), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_injector), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), footer.SizeConfig),
		),
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("unknown version")), " | "),
	}

	m.panel = settingspanel.New(m.props())
	m.unsubscribe = m.panel.Subscribe(m.onPanelState)
	m.chat.SetMessages(session.Messages)
	m.applyPrefs()
	return m
}

// props builds the panel inputs from the session. The callbacks are the
// only way the panel changes anything.
func (m *Model) props() settingspanel.Props {
	return settingspanel.Props{
		IsDarkMode:          m.session.Prefs.DarkMode,
		Settings:            m.session.Prefs.Accessibility,
		OnToggleDarkMode:    m.toggleDarkMode,
		OnToggleTTS:         m.toggleTTS,
		OnOpenAccessibility: m.openAccessibility,
		OnClearChat:         m.clearChat,
	}
}

func (m *Model) palette() theme.Palette {
	return theme.For(m.session.Prefs.DarkMode, m.session.Prefs.Accessibility.HighContrast)
}

// applyPrefs pushes the preferences into every component that renders
// them.
func (m *Model) applyPrefs() {
	p := m.palette()
	m.panel.SetProps(m.props())
	m.header.SetPalette(p)
	m.header.SetVoice(m.session.Prefs.Accessibility.TTSEnabled)
	m.chat.SetPalette(p)
	m.chat.SetLargeText(m.session.Prefs.Accessibility.LargeText)
	m.injector.SetPalette(p)
	util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
		_footer.SetPalette(p)
	})
	if m.accessibility != nil {
		m.accessibility.SetPalette(p)
		m.accessibility.SetSettings(m.session.Prefs.Accessibility)
	}
}

func (m *Model) savePrefs() {
	if err := m.session.SavePrefs(m.ctx); err != nil {
		logging.Warnf("root: %v", err)
	}
	m.applyPrefs()
}

func (m *Model) toggleTTS() tea.Cmd {
	m.session.Prefs.Accessibility.TTSEnabled = !m.session.Prefs.Accessibility.TTSEnabled
	m.savePrefs()
	return nil
}

func (m *Model) toggleDarkMode() tea.Cmd {
	m.session.Prefs.DarkMode = !m.session.Prefs.DarkMode
	m.savePrefs()
	return nil
}

func (m *Model) openAccessibility() tea.Cmd {
	if m.accessibility != nil {
		return nil
	}
	m.accessibility = accessibility.New(m.session.Prefs.Accessibility, m.palette())
	return popup.OpenWithCallback(util.ModelPointer(m.accessibility), func(*util.Model) tea.Cmd {
		m.accessibility = nil
		return nil
	})
}

func (m *Model) clearChat() tea.Cmd {
	if err := m.session.NewConversation(m.ctx); err != nil {
		logging.Warnf("root: %v", err)
	}
	m.chat.SetMessages(m.session.Messages)
	return footer.SetStatus("")
}

func (m *Model) toggleAccessibility(s accessibility.Setting) {
	m.session.Prefs.Accessibility = s.Apply(m.session.Prefs.Accessibility)
	m.savePrefs()
}

func (m *Model) send(text string) {
	for _, turn := range []struct {
		role    model.Role
		content string
	}{
		{model.RoleUser, text},
		{model.RoleAssistant, m.session.Reply(text)},
	} {
		msg, err := m.session.Post(m.ctx, turn.role, turn.content)
		if err != nil {
			logging.Warnf("root: %v", err)
		}
		m.chat.Append(msg)
	}
}

// onPanelState moves focus between the panel and the rest of the shell.
func (m *Model) onPanelState(s settingspanel.State) tea.Cmd {
	if s == settingspanel.StateOpen {
		m.stack.Blur()
		cmd, keyMap := m.panel.Focus()
		return tea.Batch(
			windowtitle.Set(i18n.T("header.menu")),
			cmd,
			util.AnnounceKeyMapCmd(keyMap),
		)
	}
	m.panel.Blur()
	cmd, keyMap := m.stack.Focus()
	return tea.Batch(
		windowtitle.Set(""),
		cmd,
		util.AnnounceKeyMapCmd(keyMap),
	)
}

func (m *Model) Init() tea.Cmd {
	m.unregister = shortcuts.Register(m.panel)

	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

// Close releases the global shortcuts and the panel subscription. It is
// safe to call more than once.
func (m *Model) Close() {
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, tea.Batch(m.stack.Update(msg), m.panel.Update(msg))
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.panel.IsOpen() {
			return m, m.panel.Update(msg)
		}
		return m, m.stack.Update(msg)
	case settingspanel.OpenMsg, settingspanel.CloseMsg, settingspanel.TriggerMsg:
		return m, m.panel.Update(msg)
	case chat.SendMsg:
		m.send(msg.Text)
		return m, footer.SetStatus("")
	case accessibility.ToggleMsg:
		m.toggleAccessibility(msg.Setting)
		return m, nil
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BaseKeyMap.Exit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, BaseKeyMap.Help):
		util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
			_footer.ToggleExpanded()
		})
		return nil
	}

	if cmd, ok := shortcuts.Handle(msg); ok {
		return cmd
	}
	if m.panel.IsOpen() {
		return m.panel.Update(msg)
	}
	if key.Matches(msg, BaseKeyMap.Menu) {
		return m.panel.Trigger()
	}
	return m.stack.Update(msg)
}

func (m *Model) View() string {
	base := m.stack.View()
	if !m.panel.IsOpen() {
		return base
	}
	return util.PlaceOverlay(
		util.Dim(base, m.palette().Scrim),
		m.panel.View(),
		lipgloss.Right, lipgloss.Top,
	)
}

// Panel exposes the settings panel, mainly for tests and the program
// teardown.
func (m *Model) Panel() *settingspanel.Model { return m.panel }

func (m *Model) Session() *Session { return m.session }

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
