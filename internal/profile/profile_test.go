package profile

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/easeaico/companion-web/internal/types"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuildAppliesDefaults(t *testing.T) {
	got, err := Draft{Name: "  Nova  ", Interests: []string{"Music", "Art", "Travel", "Science"}}.Build(nil, fixedNow)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got.Name != "Nova" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if !strings.HasPrefix(got.ID, "companion_") || len(got.ID) <= len("companion_") {
		t.Fatalf("unexpected id: %s", got.ID)
	}
	if got.Personality != DefaultPersonality {
		t.Fatalf("unexpected personality: %+v", got.Personality)
	}
	if got.ResponseStyle != DefaultResponseStyle {
		t.Fatalf("unexpected response style: %+v", got.ResponseStyle)
	}
	if got.RelationshipType != types.RelationshipFriend {
		t.Fatalf("unexpected relationship: %s", got.RelationshipType)
	}
	if got.Background != "A friend who loves Music, Art, Travel" {
		t.Fatalf("unexpected background: %q", got.Background)
	}
	if !got.CreatedAt.Equal(fixedNow) || !got.LastActive.Equal(fixedNow) {
		t.Fatalf("unexpected timestamps: %s %s", got.CreatedAt, got.LastActive)
	}
}

func TestBuildRequiresName(t *testing.T) {
	if _, err := (Draft{Name: "   "}).Build(nil, fixedNow); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestBuildEditKeepsIdentity(t *testing.T) {
	original, err := Draft{Name: "Nova", Background: "A jazz pianist."}.Build(nil, fixedNow)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	draft := FromProfile(original)
	draft.Name = "Nova Prime"
	draft.RelationshipType = types.RelationshipMentor
	later := fixedNow.Add(time.Hour)

	edited, err := draft.Build(&original, later)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.ID != original.ID {
		t.Fatalf("expected id to be kept, got %s", edited.ID)
	}
	if !edited.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("expected createdAt to be kept, got %s", edited.CreatedAt)
	}
	if !edited.LastActive.Equal(later) {
		t.Fatalf("expected lastActive to refresh, got %s", edited.LastActive)
	}
	if edited.Name != "Nova Prime" || edited.RelationshipType != types.RelationshipMentor || edited.Background != "A jazz pianist." {
		t.Fatalf("unexpected edited profile: %+v", edited)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	if NewID() == NewID() {
		t.Fatalf("expected distinct ids")
	}
}

func TestCharacters(t *testing.T) {
	chars := Characters(fixedNow)
	if len(chars) != 2 {
		t.Fatalf("expected two presets, got %d", len(chars))
	}
	orion, err := FindCharacter("orion", fixedNow)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if orion.RelationshipType != types.RelationshipMentor || orion.Personality.Dominance != 70 {
		t.Fatalf("unexpected Orion: %+v", orion)
	}
	if seraphina, err := FindCharacter("char_2", fixedNow); err != nil || seraphina.Name != "Seraphina" {
		t.Fatalf("unexpected lookup by id: %+v %v", seraphina, err)
	}
	if _, err := FindCharacter("Zed", fixedNow); err == nil {
		t.Fatalf("expected unknown character error")
	}

	chars[0].Interests[0] = "changed"
	if Characters(fixedNow)[0].Interests[0] != "Astronomy" {
		t.Fatalf("presets must not share state between calls")
	}
}

func TestTraitAccessors(t *testing.T) {
	var p types.CompanionPersonality
	for i, trait := range Traits {
		if err := SetTrait(&p, trait.Key, i*10); err != nil {
			t.Fatalf("set %s: %v", trait.Key, err)
		}
	}
	for i, trait := range Traits {
		v, ok := TraitValue(p, trait.Key)
		if !ok || v != i*10 {
			t.Fatalf("trait %s: expected %d, got %d ok=%v", trait.Key, i*10, v, ok)
		}
	}
	if err := SetTrait(&p, "charisma", 1); err == nil {
		t.Fatalf("expected unknown trait error")
	}
	if len(PresetAvatars) != 4 {
		t.Fatalf("expected four preset avatars, got %d", len(PresetAvatars))
	}
}

func TestSchemaDescribesProfile(t *testing.T) {
	schema, err := Schema()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	for _, field := range []string{"name", "personality", "relationshipType", "responseStyle", "interests"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Fatalf("expected schema property %q", field)
		}
	}
}
