// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/senachat/sena/internal/db"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
)

// Session is the host state backing the shell: preferences and the current
// conversation, mirrored in the store.
type Session struct {
	store db.Store

	Prefs          model.Preferences
	ConversationID string
	Messages       []model.ChatMessage

	now   func() time.Time
	newID func() string
}

// LoadSession reads the stored preferences, falling back to defaults, and
// resumes the current conversation or starts a new one.
func LoadSession(ctx context.Context, store db.Store, defaults model.Preferences) (*Session, error) {
	s := &Session{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}

	prefs, ok, err := store.LoadPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if !ok {
		prefs = defaults
	}
	s.Prefs = prefs

	id, err := store.CurrentConversation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if id == "" {
		if err := s.startConversation(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.ConversationID = id
	if s.Messages, err = store.Messages(ctx, id); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if len(s.Messages) == 0 {
		if _, err := s.Post(ctx, model.RoleAssistant, i18n.T("chat.greeting")); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) startConversation(ctx context.Context) error {
	s.ConversationID = s.newID()
	s.Messages = nil
	if err := s.store.SetCurrentConversation(ctx, s.ConversationID); err != nil {
		return fmt.Errorf("start conversation: %w", err)
	}
	_, err := s.Post(ctx, model.RoleAssistant, i18n.T("chat.greeting"))
	return err
}

// SavePrefs persists the current preferences.
func (s *Session) SavePrefs(ctx context.Context) error {
	if err := s.store.SavePreferences(ctx, s.Prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Post appends a message to the current conversation. The message is kept
// in memory even when storing it fails.
func (s *Session) Post(ctx context.Context, role model.Role, content string) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ConversationID: s.ConversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      s.now(),
	}
	err := s.store.AppendMessage(ctx, &msg)
	s.Messages = append(s.Messages, msg)
	if err != nil {
		return msg, fmt.Errorf("store message: %w", err)
	}
	return msg, nil
}

// NewConversation drops the current transcript and starts over with a
// fresh conversation ID and greeting.
func (s *Session) NewConversation(ctx context.Context) error {
	if _, err := s.store.ClearConversation(ctx, s.ConversationID); err != nil {
		return fmt.Errorf("clear conversation: %w", err)
	}
	return s.startConversation(ctx)
}

// Reply is the assistant's answer to text.
func (s *Session) Reply(text string) string {
	return i18n.T("chat.reply", text)
}
