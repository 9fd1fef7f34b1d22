// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestChatMessageString(t *testing.T) {
	m := ChatMessage{Role: RoleAssistant, Content: "hi"}
	if got := m.String(); got != "assistant: hi" {
		t.Errorf("unexpected ChatMessage.String(): %q", got)
	}
}

func TestLastOf(t *testing.T) {
	msgs := []ChatMessage{
		{ID: 1, Role: RoleAssistant, Content: "hello"},
		{ID: 2, Role: RoleUser, Content: "hey"},
		{ID: 3, Role: RoleAssistant, Content: "how can I help?"},
		{ID: 4, Role: RoleUser, Content: "thanks"},
	}

	got, ok := LastOf(msgs, RoleAssistant)
	if !ok || got.ID != 3 {
		t.Fatalf("expected message 3, got %+v (ok=%v)", got, ok)
	}

	if _, ok := LastOf(msgs[:0], RoleUser); ok {
		t.Fatalf("expected no match on empty transcript")
	}
}
