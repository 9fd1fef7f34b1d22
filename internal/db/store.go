// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/senachat/sena/internal/model"
)

// Store defines the persistence used by the shell: user preferences, the
// current conversation pointer and the chat transcript.
type Store interface {
	// Preferences; ok is false when nothing was saved yet.
	LoadPreferences(ctx context.Context) (prefs model.Preferences, ok bool, err error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error

	// Conversation pointer; "" when none was started yet.
	CurrentConversation(ctx context.Context) (string, error)
	SetCurrentConversation(ctx context.Context, id string) error

	// Transcript
	AppendMessage(ctx context.Context, msg *model.ChatMessage) error
	Messages(ctx context.Context, conversationID string) ([]model.ChatMessage, error)
	AllMessages(ctx context.Context) ([]model.ChatMessage, error)
	ClearConversation(ctx context.Context, conversationID string) (int, error)
	ClearAll(ctx context.Context) (int, error)

	Close() error
}
