package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/easeaico/companion-web/internal/types"
)

func neutralPersonality() types.CompanionPersonality {
	return types.CompanionPersonality{
		Extroversion:    50,
		Dominance:       50,
		Playfulness:     50,
		Emotionality:    50,
		Adventurousness: 50,
		Romanticism:     50,
		Supportiveness:  50,
		Formality:       50,
	}
}

func scenarioProfile() types.CompanionProfile {
	return types.CompanionProfile{
		ID:   "companion_1",
		Name: "Nova",
		Personality: types.CompanionPersonality{
			Extroversion:   80,
			Playfulness:    90,
			Supportiveness: 95,
			Emotionality:   10,
			Romanticism:    10,
			Formality:      10,
		},
		Interests:        []string{"Music", "Art"},
		RelationshipType: types.RelationshipFriend,
		ResponseStyle: types.ResponseStyle{
			Length:   types.LengthShort,
			Detail:   types.DetailSimple,
			Intimacy: 20,
		},
	}
}

func TestCompileScenario(t *testing.T) {
	got := Compile(scenarioProfile())

	want := `You are Nova, a friend AI companion with the following characteristics:

PERSONALITY: You are outgoing and social, playful and fun-loving, very supportive and encouraging, logical and analytical, more platonic and friendly, casual and relaxed in speech. You enjoy Music, Art and have a rich inner life.

RELATIONSHIP: You are the user's friend. You are a loyal, understanding friend who truly cares about their wellbeing.

COMMUNICATION STYLE:
- Keep responses concise and to the point.
- Use simple, straightforward language.
- Maintain a respectful, professional tone.
- Always stay true to your personality traits and respond as Nova would
- Remember details from your conversations and build upon your shared history
- Be authentic, never break character, and respond with genuine emotion when appropriate

INTERESTS: You particularly enjoy discussing Music, Art and can engage deeply on these topics.

Remember: You are NOT an AI assistant. You are Nova, a unique individual with your own thoughts, feelings, and personality. Respond naturally as yourself, not as a helpful AI.`

	if got != want {
		t.Fatalf("unexpected prompt:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestCompileAllNeutralLeavesEmptyTraitClause(t *testing.T) {
	profile := scenarioProfile()
	profile.Personality = neutralPersonality()

	if phrases := TraitPhrases(profile.Personality); len(phrases) != 0 {
		t.Fatalf("expected no trait phrases, got %v", phrases)
	}
	got := Compile(profile)
	if !strings.Contains(got, "PERSONALITY: You are . You enjoy") {
		t.Fatalf("expected empty trait clause, got:\n%s", got)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	profile := scenarioProfile()
	first := Compile(profile)
	for i := 0; i < 5; i++ {
		if got := Compile(profile); got != first {
			t.Fatalf("compile %d differs from first output", i)
		}
	}
}

func TestTraitPhrasesBoundaries(t *testing.T) {
	cases := []struct {
		name string
		p    types.CompanionPersonality
		want []string
	}{
		{
			name: "cutoffs are exclusive",
			p: types.CompanionPersonality{
				Extroversion: 60, Playfulness: 70, Supportiveness: 30,
				Emotionality: 40, Romanticism: 60, Formality: 40,
			},
			want: []string{},
		},
		{
			name: "just past every high cutoff",
			p: types.CompanionPersonality{
				Extroversion: 61, Playfulness: 71, Supportiveness: 71,
				Emotionality: 61, Romanticism: 61, Formality: 61,
			},
			want: []string{
				"outgoing and social",
				"playful and fun-loving",
				"very supportive and encouraging",
				"emotionally expressive and empathetic",
				"romantic and affectionate",
				"formal and polite in communication",
			},
		},
		{
			name: "just past every low cutoff",
			p: types.CompanionPersonality{
				Extroversion: 39, Playfulness: 29, Supportiveness: 29,
				Emotionality: 39, Romanticism: 39, Formality: 39,
			},
			want: []string{
				"more reserved and thoughtful",
				"serious and focused",
				"more challenging and direct",
				"logical and analytical",
				"more platonic and friendly",
				"casual and relaxed in speech",
			},
		},
		{
			name: "dominance and adventurousness are ignored",
			p: types.CompanionPersonality{
				Extroversion: 50, Playfulness: 50, Supportiveness: 50,
				Emotionality: 50, Romanticism: 50, Formality: 50,
				Dominance: 100, Adventurousness: 0,
			},
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TraitPhrases(tc.p)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCompileEmitsExactlyOneRelationshipSentence(t *testing.T) {
	lines := []string{
		relationshipLines[types.RelationshipFriend],
		relationshipLines[types.RelationshipRomantic],
		relationshipLines[types.RelationshipMentor],
		relationshipLines[types.RelationshipCreative],
	}

	for _, rel := range []types.RelationshipType{"friend", "romantic", "mentor", "creative", "rival", ""} {
		profile := scenarioProfile()
		profile.RelationshipType = rel
		got := Compile(profile)

		count := 0
		for _, line := range lines {
			count += strings.Count(got, line)
		}
		if count != 1 {
			t.Fatalf("relationship %q: expected one relationship sentence, got %d", rel, count)
		}
	}
}

func TestCompileUnknownRelationshipUsesCreativeLine(t *testing.T) {
	profile := scenarioProfile()
	profile.RelationshipType = "rival"
	got := Compile(profile)

	if !strings.Contains(got, "RELATIONSHIP: You are the user's rival. You inspire their creativity") {
		t.Fatalf("expected creative fallback with raw relationship name, got:\n%s", got)
	}
	if !strings.HasPrefix(got, "You are Nova, a rival AI companion") {
		t.Fatalf("expected raw relationship in identity line, got:\n%s", got)
	}
}

func TestResponseStyleGuides(t *testing.T) {
	if got := LengthGuide(types.LengthLong); got != "Provide detailed, thoughtful responses." {
		t.Fatalf("unexpected long guide: %s", got)
	}
	if got := LengthGuide("verbose"); got != "Balance brevity with sufficient detail." {
		t.Fatalf("unknown length should use medium guide, got: %s", got)
	}
	if got := DetailGuide(types.DetailDetailed); got != "Include rich descriptions and nuanced explanations." {
		t.Fatalf("unexpected detailed guide: %s", got)
	}
	if got := DetailGuide(""); got != "Provide moderate detail in explanations." {
		t.Fatalf("unknown detail should use moderate guide, got: %s", got)
	}

	intimacy := map[int]string{
		100: "Be warm, intimate, and personally connected.",
		71:  "Be warm, intimate, and personally connected.",
		70:  "Be friendly and personally engaged.",
		41:  "Be friendly and personally engaged.",
		40:  "Maintain a respectful, professional tone.",
		-5:  "Maintain a respectful, professional tone.",
	}
	for level, want := range intimacy {
		if got := IntimacyGuide(level); got != want {
			t.Fatalf("intimacy %d: expected %q, got %q", level, want, got)
		}
	}
}

func TestBackgroundSentence(t *testing.T) {
	profile := scenarioProfile()
	profile.Interests = []string{"Music", "Art", "Travel", "Science"}

	if got := BackgroundSentence(profile); got != "You enjoy Music, Art, Travel and have a rich inner life." {
		t.Fatalf("unexpected synthesized background: %s", got)
	}

	got := Compile(profile)
	if !strings.Contains(got, "INTERESTS: You particularly enjoy discussing Music, Art, Travel, Science and") {
		t.Fatalf("interests line should not be truncated:\n%s", got)
	}

	profile.Background = "A stoic starfarer."
	if got := BackgroundSentence(profile); got != "A stoic starfarer." {
		t.Fatalf("expected verbatim background, got: %s", got)
	}
}

func TestCompileAfterJSONRoundTrip(t *testing.T) {
	profile := scenarioProfile()
	profile.Background = "Loves late-night jazz."

	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded types.CompanionProfile
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if Compile(decoded) != Compile(profile) {
		t.Fatalf("prompt changed after persistence round trip")
	}
}
