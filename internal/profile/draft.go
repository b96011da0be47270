// Package profile builds companion profiles the way the creation wizard
// does and holds the preset characters, avatars and slider descriptors.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easeaico/companion-web/internal/types"
)

// ErrNameRequired is returned when a draft has a blank name.
var ErrNameRequired = errors.New("please give your companion a name")

const backgroundInterestLimit = 3

// DefaultPersonality is the slider position a new companion starts from.
var DefaultPersonality = types.CompanionPersonality{
	Extroversion:    60,
	Dominance:       40,
	Playfulness:     70,
	Emotionality:    60,
	Adventurousness: 50,
	Romanticism:     30,
	Supportiveness:  80,
	Formality:       30,
}

// DefaultResponseStyle is the response style a new companion starts from.
var DefaultResponseStyle = types.ResponseStyle{
	Length:   types.LengthMedium,
	Detail:   types.DetailModerate,
	Intimacy: 50,
}

// Draft is the wizard input. Nil pointers and empty values take the wizard
// defaults, or the existing profile's values when editing.
type Draft struct {
	Name             string
	Avatar           string
	Personality      *types.CompanionPersonality
	Background       string
	Interests        []string
	RelationshipType types.RelationshipType
	ResponseStyle    *types.ResponseStyle
}

// FromProfile returns a draft pre-filled from p, used to edit it.
func FromProfile(p types.CompanionProfile) Draft {
	personality := p.Personality
	style := p.ResponseStyle
	return Draft{
		Name:             p.Name,
		Avatar:           p.Avatar,
		Personality:      &personality,
		Background:       p.Background,
		Interests:        append([]string(nil), p.Interests...),
		RelationshipType: p.RelationshipType,
		ResponseStyle:    &style,
	}
}

// Build turns the draft into a profile. Editing replaces existing wholesale
// but keeps its id and creation time.
func (d Draft) Build(existing *types.CompanionProfile, now time.Time) (types.CompanionProfile, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return types.CompanionProfile{}, ErrNameRequired
	}

	relationship := d.RelationshipType
	if relationship == "" {
		relationship = types.RelationshipFriend
	}

	personality := DefaultPersonality
	if d.Personality != nil {
		personality = *d.Personality
	}

	style := DefaultResponseStyle
	if d.ResponseStyle != nil {
		style = *d.ResponseStyle
		if style.Length == "" {
			style.Length = DefaultResponseStyle.Length
		}
		if style.Detail == "" {
			style.Detail = DefaultResponseStyle.Detail
		}
	}

	interests := d.Interests
	if interests == nil {
		interests = []string{}
	}

	background := strings.TrimSpace(d.Background)
	if background == "" {
		background = fallbackBackground(relationship, interests)
	}

	profile := types.CompanionProfile{
		ID:               NewID(),
		Name:             name,
		Avatar:           d.Avatar,
		Personality:      personality,
		Background:       background,
		Interests:        interests,
		RelationshipType: relationship,
		ResponseStyle:    style,
		CreatedAt:        now,
		LastActive:       now,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	return profile, nil
}

// NewID returns a fresh companion id.
func NewID() string {
	return "companion_" + uuid.NewString()
}

func fallbackBackground(relationship types.RelationshipType, interests []string) string {
	if len(interests) > backgroundInterestLimit {
		interests = interests[:backgroundInterestLimit]
	}
	return fmt.Sprintf("A %s who loves %s", relationship, strings.Join(interests, ", "))
}
