package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/easeaico/companion-web/internal/types"
)

const presetImageBase = "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/"

// PresetAvatars are the ready-made portraits offered next to generation.
var PresetAvatars = []string{
	presetImageBase + "6f637669-1c69-4249-8f8a-696fc65127e6.png",
	presetImageBase + "6c9b7fdc-536f-4ab9-9590-58d67acefcf7.png",
	presetImageBase + "646daa36-8cae-44dd-a726-963f786ba198.png",
	presetImageBase + "e215194d-c36a-481e-ab22-f197940a9ef9.png",
}

// Characters returns the pre-generated companions. Each call returns fresh
// copies stamped with now.
func Characters(now time.Time) []types.CompanionProfile {
	return []types.CompanionProfile{
		{
			ID:         "char_1",
			Name:       "Orion",
			Avatar:     presetImageBase + "c31508f8-b7eb-41fb-9762-184b90e9d6b2.png",
			Background: "A stoic starfarer who has seen the wonders and horrors of the galaxy. He is wise, protective, and slow to trust, but fiercely loyal to those he calls friend.",
			Interests:  []string{"Astronomy", "Philosophy", "Ancient History"},
			Personality: types.CompanionPersonality{
				Extroversion: 30, Dominance: 70, Playfulness: 20, Emotionality: 40,
				Adventurousness: 80, Romanticism: 10, Supportiveness: 60, Formality: 60,
			},
			RelationshipType: types.RelationshipMentor,
			ResponseStyle:    types.ResponseStyle{Length: types.LengthMedium, Detail: types.DetailDetailed, Intimacy: 30},
			CreatedAt:        now,
			LastActive:       now,
		},
		{
			ID:         "char_2",
			Name:       "Seraphina",
			Avatar:     presetImageBase + "4890a5f8-9588-4665-b1ac-257a091005b8.png",
			Background: "A mischievous and playful elemental spirit bound to a forgotten forest. She is curious about the human world, loves to play games, and speaks in riddles.",
			Interests:  []string{"Nature", "Puzzles", "Storytelling"},
			Personality: types.CompanionPersonality{
				Extroversion: 80, Dominance: 30, Playfulness: 90, Emotionality: 60,
				Adventurousness: 70, Romanticism: 40, Supportiveness: 70, Formality: 20,
			},
			RelationshipType: types.RelationshipFriend,
			ResponseStyle:    types.ResponseStyle{Length: types.LengthMedium, Detail: types.DetailModerate, Intimacy: 50},
			CreatedAt:        now,
			LastActive:       now,
		},
	}
}

// FindCharacter looks a preset up by id or case-insensitive name.
func FindCharacter(ref string, now time.Time) (types.CompanionProfile, error) {
	for _, c := range Characters(now) {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return types.CompanionProfile{}, fmt.Errorf("unknown character %q", ref)
}

// RelationshipOption describes a relationship type for pickers.
type RelationshipOption struct {
	Value       types.RelationshipType `json:"value"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
}

var RelationshipOptions = []RelationshipOption{
	{Value: types.RelationshipFriend, Label: "Friend", Description: "A supportive, understanding friend"},
	{Value: types.RelationshipRomantic, Label: "Romantic", Description: "An intimate, caring romantic partner"},
	{Value: types.RelationshipMentor, Label: "Mentor", Description: "A wise guide to help you grow"},
	{Value: types.RelationshipCreative, Label: "Creative", Description: "An inspiring creative collaborator"},
}

// InterestSuggestions are offered when picking interests; 3-5 work best.
var InterestSuggestions = []string{
	"Art & Creativity", "Music", "Movies & TV", "Books & Literature", "Technology", "Gaming",
	"Travel", "Food & Cooking", "Fitness & Health", "Nature & Outdoors", "Science", "Philosophy",
	"Psychology", "History", "Fashion", "Photography", "Dance", "Spirituality",
}
