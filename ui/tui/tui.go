// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/senachat/sena/internal/db"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/logging"
	"github.com/senachat/sena/internal/model"
	"github.com/senachat/sena/ui/tui/models/views/root"
)

// Run starts the shell on store and blocks until the user quits. defaults
// seed the preferences on first run; the configured language always wins.
func Run(ctx context.Context, store db.Store, defaults model.Preferences) error {
	session, err := root.LoadSession(ctx, store, defaults)
	if err != nil {
		return err
	}

	if defaults.Language != "" && session.Prefs.Language != defaults.Language {
		session.Prefs.Language = defaults.Language
		if err := session.SavePrefs(ctx); err != nil {
			logging.Warnf("tui: %v", err)
		}
	}
	i18n.SetLang(session.Prefs.Language)
	logging.Infof("tui: starting conversation %s (%s)", session.ConversationID, session.Prefs.Language)

	m := root.New(ctx, session)
	defer m.Close()

	if _, err := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
