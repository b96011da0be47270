package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/easeaico/companion-web/internal/types"
)

// Keys match the browser local storage keys of the web front-end.
const (
	ProfileKey  = "companion-profile"
	MessagesKey = "chat-messages"
)

// Session reads and writes the companion profile and chat history as JSON.
type Session struct {
	kv KV
}

func NewSession(kv KV) *Session {
	return &Session{kv: kv}
}

// Profile returns the stored profile or ErrNotFound.
func (s *Session) Profile(ctx context.Context) (types.CompanionProfile, error) {
	var profile types.CompanionProfile
	ok, err := s.load(ctx, ProfileKey, &profile)
	if err != nil {
		return types.CompanionProfile{}, err
	}
	if !ok {
		return types.CompanionProfile{}, ErrNotFound
	}
	return profile, nil
}

// SaveProfile replaces the stored profile.
func (s *Session) SaveProfile(ctx context.Context, profile types.CompanionProfile) error {
	return s.save(ctx, ProfileKey, profile)
}

// Messages returns the stored history, empty when none was saved.
func (s *Session) Messages(ctx context.Context) ([]types.Message, error) {
	var messages []types.Message
	if _, err := s.load(ctx, MessagesKey, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveMessages replaces the stored history.
func (s *Session) SaveMessages(ctx context.Context, messages []types.Message) error {
	if messages == nil {
		messages = []types.Message{}
	}
	return s.save(ctx, MessagesKey, messages)
}

// ClearMessages removes the stored history.
func (s *Session) ClearMessages(ctx context.Context) error {
	return s.kv.Delete(ctx, MessagesKey)
}

// Reset removes the profile and the history.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, ProfileKey); err != nil {
		return err
	}
	return s.kv.Delete(ctx, MessagesKey)
}

func (s *Session) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Session) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(raw))
}
