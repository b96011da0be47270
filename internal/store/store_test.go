package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/easeaico/companion-web/internal/prompt"
	"github.com/easeaico/companion-web/internal/types"
)

func newTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "nested", "companion.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || got != "v2" {
		t.Fatalf("expected v2, got %q ok=%v err=%v", got, ok, err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected key to be deleted")
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting a missing key should succeed: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestSQLiteKV(t *testing.T) {
	exerciseKV(t, newTestSQLite(t))
}

func TestBoltKV(t *testing.T) {
	kv, err := NewBoltKV(filepath.Join(t.TempDir(), "companion.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion.db")
	ctx := context.Background()

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(ctx, ProfileKey, `{"name":"Nova"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	kv.Close()

	reopened, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Get(ctx, ProfileKey)
	if err != nil || !ok || got != `{"name":"Nova"}` {
		t.Fatalf("unexpected value after reopen: %q ok=%v err=%v", got, ok, err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, "memory")
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := kv.(*MemoryKV); !ok {
		t.Fatalf("expected MemoryKV, got %T", kv)
	}

	kv, err = Open(ctx, filepath.Join(t.TempDir(), "c.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer kv.Close()
	if _, ok := kv.(*SQLiteKV); !ok {
		t.Fatalf("expected SQLiteKV, got %T", kv)
	}

	kv, err = Open(ctx, filepath.Join(t.TempDir(), "c.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer kv.Close()
	if _, ok := kv.(*BoltKV); !ok {
		t.Fatalf("expected BoltKV, got %T", kv)
	}

	if !IsPostgresDSN("postgresql://u:p@localhost/db") || IsPostgresDSN("/tmp/c.db") {
		t.Fatalf("unexpected postgres dsn detection")
	}
}

func TestSessionProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	session := NewSession(newTestSQLite(t))

	if _, err := session.Profile(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	profile := types.CompanionProfile{
		ID:   "companion_1",
		Name: "Nova",
		Personality: types.CompanionPersonality{
			Extroversion: 80, Playfulness: 90, Supportiveness: 95,
			Emotionality: 10, Romanticism: 10, Formality: 10,
		},
		Interests:        []string{"Music", "Art"},
		RelationshipType: types.RelationshipFriend,
		ResponseStyle:    types.ResponseStyle{Length: types.LengthShort, Detail: types.DetailSimple, Intimacy: 20},
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := session.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := session.Profile(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prompt.Compile(loaded) != prompt.Compile(profile) {
		t.Fatalf("compiled prompt changed after persistence")
	}
	if !loaded.CreatedAt.Equal(profile.CreatedAt) {
		t.Fatalf("createdAt changed: %s", loaded.CreatedAt)
	}
}

func TestSessionMessages(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	session := NewSession(kv)

	msgs, err := session.Messages(ctx)
	if err != nil || len(msgs) != 0 {
		t.Fatalf("expected empty history, got %v err=%v", msgs, err)
	}

	want := []types.Message{
		{ID: "welcome", Content: "hi", Sender: types.SenderCompanion},
		{ID: "m1", Content: "", Sender: types.SenderCompanion, Type: types.MessageImage, MediaURL: "https://x/y.png"},
	}
	if err := session.SaveMessages(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := session.Messages(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[1].MediaURL != "https://x/y.png" || got[1].Type != types.MessageImage {
		t.Fatalf("unexpected history: %+v", got)
	}

	if err := session.ClearMessages(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := session.Messages(ctx); len(got) != 0 {
		t.Fatalf("expected cleared history, got %v", got)
	}
}

func TestSessionCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Set(ctx, ProfileKey, "{not json")

	if _, err := NewSession(kv).Profile(ctx); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestSessionReset(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	session := NewSession(kv)
	_ = session.SaveProfile(ctx, types.CompanionProfile{Name: "Nova"})
	_ = session.SaveMessages(ctx, []types.Message{{ID: "a"}})

	if err := session.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, ProfileKey); ok {
		t.Fatalf("expected profile to be removed")
	}
	if _, ok, _ := kv.Get(ctx, MessagesKey); ok {
		t.Fatalf("expected messages to be removed")
	}
}
