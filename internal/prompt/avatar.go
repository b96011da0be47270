package prompt

import (
	"strings"

	"github.com/easeaico/companion-web/internal/types"
)

const avatarRenderSuffix = ", soft lighting, warm colors, digital art style, high quality portrait"

var avatarStyles = map[types.RelationshipType]string{
	types.RelationshipMentor:   ", wise and thoughtful",
	types.RelationshipCreative: ", artistic and inspiring",
	types.RelationshipRomantic: ", warm and inviting",
}

// AvatarPrompt builds the image prompt used to generate a companion avatar.
// A non-blank custom prompt is returned trimmed and wins over the synthesized one.
func AvatarPrompt(relationship types.RelationshipType, personality types.CompanionPersonality, custom string) string {
	if custom = strings.TrimSpace(custom); custom != "" {
		return custom
	}

	subject := "friendly"
	if relationship == types.RelationshipRomantic {
		subject = "attractive"
	}

	var sb strings.Builder
	sb.WriteString("Professional portrait of a ")
	sb.WriteString(subject)
	sb.WriteString(" AI companion")

	if traits := avatarTraits(personality); len(traits) > 0 {
		sb.WriteString(", ")
		sb.WriteString(strings.Join(traits, " and "))
		sb.WriteString(" appearance")
	}

	style, ok := avatarStyles[relationship]
	if !ok {
		style = ", approachable and friendly"
	}
	sb.WriteString(style)
	sb.WriteString(avatarRenderSuffix)
	return sb.String()
}

func avatarTraits(p types.CompanionPersonality) []string {
	var traits []string
	if p.Extroversion > 60 {
		traits = append(traits, "confident")
	}
	if p.Playfulness > 70 {
		traits = append(traits, "cheerful")
	}
	if p.Emotionality > 60 {
		traits = append(traits, "expressive")
	}
	if p.Supportiveness > 70 {
		traits = append(traits, "kind")
	}
	if p.Formality > 60 {
		traits = append(traits, "professional")
	} else if p.Formality < 40 {
		traits = append(traits, "casual")
	}
	return traits
}
