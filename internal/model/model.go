// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared between the store, the
// CLI and the TUI.
package model

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// AccessibilitySettings are the user's accessibility toggles. The settings
// panel only reads them; changes go through the host.
type AccessibilitySettings struct {
	TTSEnabled   bool `yaml:"tts_enabled" json:"tts_enabled"`
	HighContrast bool `yaml:"high_contrast" json:"high_contrast"`
	LargeText    bool `yaml:"large_text" json:"large_text"`
	ReduceMotion bool `yaml:"reduce_motion" json:"reduce_motion"`
}

// Preferences is everything the shell persists about the user.
type Preferences struct {
	DarkMode      bool                  `yaml:"dark_mode" json:"dark_mode"`
	Language      string                `yaml:"language" json:"language"`
	Accessibility AccessibilitySettings `yaml:"accessibility" json:"accessibility"`
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one transcript entry of a conversation.
type ChatMessage struct {
	bun.BaseModel `bun:"table:chat_messages,alias:cm" json:"-" yaml:"-"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	ConversationID string    `bun:"conversation_id,notnull" json:"conversation_id"`
	Role           Role      `bun:"role,notnull" json:"role"`
	Content        string    `bun:"content,notnull" json:"content"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"created_at"`
}

// String renders the message as "role: content".
func (m ChatMessage) String() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Content)
}

// LastOf returns the most recent message with the given role.
func LastOf(messages []ChatMessage, role Role) (ChatMessage, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == role {
			return messages[i], true
		}
	}
	return ChatMessage{}, false
}
