// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/senachat/sena/internal/db"
	"github.com/senachat/sena/internal/i18n"
	"github.com/senachat/sena/internal/model"
)

// setupTestConfig writes a config pointing at a sqlite file in a temp dir
// and keeps the user config dir away from the real one.
func setupTestConfig(t *testing.T) (configPath, dsn string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	dsn = filepath.Join(dir, "sena.db")
	configPath = filepath.Join(dir, "sena.yaml")
	content := fmt.Sprintf(`database:
  type: sqlite
  dsn: %s
language: en
dark_mode: true
log:
  level: info
  file: %s
`, dsn, filepath.Join(dir, "sena.log"))
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	i18n.Init("en")
	return configPath, dsn
}

func seedMessages(t *testing.T, dsn string, conversationID string, contents ...string) {
	t.Helper()
	ctx := context.Background()
	store, err := db.New(ctx, "sqlite", dsn)
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.SetCurrentConversation(ctx, conversationID); err != nil {
		t.Fatalf("SetCurrentConversation: %v", err)
	}
	for i, c := range contents {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		msg := model.ChatMessage{ConversationID: conversationID, Role: role, Content: c, CreatedAt: time.Now()}
		if err := store.AppendMessage(ctx, &msg); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHistoryShow(t *testing.T) {
	configPath, dsn := setupTestConfig(t)
	seedMessages(t, dsn, "conv-1", "hello", "hi there")

	out, err := run(t, "--config", configPath, "history", "show")
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(out, "user: hello") || !strings.Contains(out, "assistant: hi there") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestHistoryExportCompressed(t *testing.T) {
	configPath, dsn := setupTestConfig(t)
	seedMessages(t, dsn, "conv-1", "one", "two", "three")

	target := filepath.Join(t.TempDir(), "export.json")
	if _, err := run(t, "--config", configPath, "history", "export", target, "--zstd"); err != nil {
		t.Fatalf("history export failed: %v", err)
	}

	f, err := os.Open(target + ".zst")
	if err != nil {
		t.Fatalf("expected compressed export: %v", err)
	}
	defer func() { _ = f.Close() }()

	data, err := readHistory(f, true)
	if err != nil {
		t.Fatalf("readHistory: %v", err)
	}
	if len(data.Messages) != 3 || data.Messages[2].Content != "three" {
		t.Fatalf("unexpected export %+v", data.Messages)
	}
}

func TestHistoryExportStdout(t *testing.T) {
	configPath, dsn := setupTestConfig(t)
	seedMessages(t, dsn, "conv-1", "plain")

	out, err := run(t, "--config", configPath, "history", "export")
	if err != nil {
		t.Fatalf("history export failed: %v", err)
	}
	data, err := readHistory(strings.NewReader(out), false)
	if err != nil {
		t.Fatalf("readHistory: %v", err)
	}
	if len(data.Messages) != 1 || data.Messages[0].Content != "plain" {
		t.Fatalf("unexpected export %+v", data.Messages)
	}
}

func TestHistoryClear(t *testing.T) {
	configPath, dsn := setupTestConfig(t)
	seedMessages(t, dsn, "conv-1", "a", "b")

	out, err := run(t, "--config", configPath, "history", "clear")
	if err != nil {
		t.Fatalf("history clear failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("history.cleared", 2)) {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, "--config", configPath, "history", "show")
	if err != nil {
		t.Fatalf("history show failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("chat.empty")) {
		t.Fatalf("expected empty history, got %q", out)
	}
}

func TestPrefsShowsDefaults(t *testing.T) {
	configPath, _ := setupTestConfig(t)

	out, err := run(t, "--config", configPath, "prefs")
	if err != nil {
		t.Fatalf("prefs failed: %v", err)
	}
	if !strings.Contains(out, "dark_mode: true") || !strings.Contains(out, "language: en") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	configPath, _ := setupTestConfig(t)
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func() bool { return false }

	if _, err := run(t, "--config", configPath); err == nil {
		t.Fatal("expected an error without a terminal")
	}
}

func TestMissingConfigFlagFile(t *testing.T) {
	setupTestConfig(t)
	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "prefs"); err == nil {
		t.Fatal("expected an error for a missing --config file")
	}
}
