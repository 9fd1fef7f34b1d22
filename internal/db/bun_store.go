// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/senachat/sena/internal/model"
	"github.com/uptrace/bun"
)

const (
	settingPreferences  = "preferences"
	settingConversation = "conversation"
)

// setting is a name/value row. "key" is reserved in MySQL, hence "name".
type setting struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	Name      string    `bun:"name,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunStore implements Store on top of bun for all supported dialects.
type BunStore struct {
	bun *bun.DB
}

// BunDB exposes the underlying bun handle for tooling and tests.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

func (s *BunStore) getSetting(ctx context.Context, name string) (string, bool, error) {
	var row setting
	err := s.bun.NewSelect().Model(&row).Where("name = ?", name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// putSetting replaces a setting. Delete-then-insert keeps it dialect
// agnostic (no ON CONFLICT / ON DUPLICATE KEY split).
func (s *BunStore) putSetting(ctx context.Context, name, value string) error {
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*setting)(nil)).Where("name = ?", name).Exec(ctx); err != nil {
			return err
		}
		row := &setting{Name: name, Value: value, UpdatedAt: time.Now().UTC()}
		_, err := tx.NewInsert().Model(row).Exec(ctx)
		return MapDBError(err)
	})
}

// LoadPreferences returns the saved preferences.
func (s *BunStore) LoadPreferences(ctx context.Context) (model.Preferences, bool, error) {
	var prefs model.Preferences
	raw, ok, err := s.getSetting(ctx, settingPreferences)
	if err != nil || !ok {
		return prefs, false, err
	}
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return prefs, false, fmt.Errorf("corrupt preferences: %w", err)
	}
	return prefs, true, nil
}

// SavePreferences persists prefs, replacing earlier ones.
func (s *BunStore) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := s.putSetting(ctx, settingPreferences, string(data)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	dbLogf("db: saved preferences %s", data)
	return nil
}

// CurrentConversation returns the active conversation id or "".
func (s *BunStore) CurrentConversation(ctx context.Context) (string, error) {
	id, _, err := s.getSetting(ctx, settingConversation)
	return id, err
}

// SetCurrentConversation stores the active conversation id.
func (s *BunStore) SetCurrentConversation(ctx context.Context, id string) error {
	return s.putSetting(ctx, settingConversation, id)
}

// AppendMessage inserts msg and fills in its ID (and CreatedAt if unset).
func (s *BunStore) AppendMessage(ctx context.Context, msg *model.ChatMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if _, err := s.bun.NewInsert().Model(msg).Exec(ctx); err != nil {
		return fmt.Errorf("append message: %w", MapDBError(err))
	}
	return nil
}

// Messages returns the transcript of one conversation, oldest first.
func (s *BunStore) Messages(ctx context.Context, conversationID string) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := s.bun.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Scan(ctx)
	return msgs, err
}

// AllMessages returns every stored message, oldest first.
func (s *BunStore) AllMessages(ctx context.Context) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := s.bun.NewSelect().Model(&msgs).Order("id ASC").Scan(ctx)
	return msgs, err
}

// ClearConversation deletes the messages of one conversation.
func (s *BunStore) ClearConversation(ctx context.Context, conversationID string) (int, error) {
	res, err := s.bun.NewDelete().
		Model((*model.ChatMessage)(nil)).
		Where("conversation_id = ?", conversationID).
		Exec(ctx)
	return affected(res, err)
}

// ClearAll deletes the whole transcript.
func (s *BunStore) ClearAll(ctx context.Context) (int, error) {
	res, err := s.bun.NewDelete().
		Model((*model.ChatMessage)(nil)).
		Where("1 = 1").
		Exec(ctx)
	return affected(res, err)
}

func affected(res sql.Result, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Close closes the database.
func (s *BunStore) Close() error {
	return s.bun.Close()
}

// *BunStore implements Store
var _ Store = (*BunStore)(nil)
