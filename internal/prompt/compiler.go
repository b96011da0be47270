// Package prompt turns a companion profile into the system prompt and builds
// the ordered message list sent to the completion provider each turn.
package prompt

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/easeaico/companion-web/internal/types"
)

// backgroundInterestLimit caps how many interests feed the synthesized
// background sentence. The INTERESTS line always lists all of them.
const backgroundInterestLimit = 3

var relationshipLines = map[types.RelationshipType]string{
	types.RelationshipRomantic: "You care deeply about them and express affection appropriately.",
	types.RelationshipFriend:   "You are a loyal, understanding friend who truly cares about their wellbeing.",
	types.RelationshipMentor:   "You guide them with wisdom while respecting their autonomy and growth.",
	types.RelationshipCreative: "You inspire their creativity and share in their artistic journey.",
}

var lengthGuides = map[types.ResponseLength]string{
	types.LengthShort:  "Keep responses concise and to the point.",
	types.LengthMedium: "Balance brevity with sufficient detail.",
	types.LengthLong:   "Provide detailed, thoughtful responses.",
}

var detailGuides = map[types.ResponseDetail]string{
	types.DetailSimple:   "Use simple, straightforward language.",
	types.DetailModerate: "Provide moderate detail in explanations.",
	types.DetailDetailed: "Include rich descriptions and nuanced explanations.",
}

// Compile renders profile into the system prompt. It never fails: unknown
// enumeration values resolve to their documented defaults and an all-neutral
// personality leaves the trait clause empty.
func Compile(profile types.CompanionProfile) string {
	data := templateData{
		Name:             profile.Name,
		Relationship:     string(profile.RelationshipType),
		Traits:           strings.Join(TraitPhrases(profile.Personality), ", "),
		Background:       BackgroundSentence(profile),
		RelationshipLine: RelationshipLine(profile.RelationshipType),
		LengthGuide:      LengthGuide(profile.ResponseStyle.Length),
		DetailGuide:      DetailGuide(profile.ResponseStyle.Detail),
		IntimacyGuide:    IntimacyGuide(profile.ResponseStyle.Intimacy),
		Interests:        strings.Join(profile.Interests, ", "),
	}

	var buf bytes.Buffer
	if err := systemPromptTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render system prompt", "companion", profile.Name, "error", err.Error())
	}
	return buf.String()
}

// RelationshipLine returns the RELATIONSHIP sentence for r.
func RelationshipLine(r types.RelationshipType) string {
	return relationshipLines[r.Resolve()]
}

// LengthGuide returns the response-length bullet for l.
func LengthGuide(l types.ResponseLength) string {
	return lengthGuides[l.Resolve()]
}

// DetailGuide returns the response-detail bullet for d.
func DetailGuide(d types.ResponseDetail) string {
	return detailGuides[d.Resolve()]
}

// IntimacyGuide returns the tone bullet for an intimacy level. The first
// matching cutoff wins.
func IntimacyGuide(intimacy int) string {
	switch {
	case intimacy > 70:
		return "Be warm, intimate, and personally connected."
	case intimacy > 40:
		return "Be friendly and personally engaged."
	default:
		return "Maintain a respectful, professional tone."
	}
}

// BackgroundSentence returns the background verbatim, or a sentence built
// from the first interests when the background is empty.
func BackgroundSentence(profile types.CompanionProfile) string {
	if profile.Background != "" {
		return profile.Background
	}
	interests := profile.Interests
	if len(interests) > backgroundInterestLimit {
		interests = interests[:backgroundInterestLimit]
	}
	return "You enjoy " + strings.Join(interests, ", ") + " and have a rich inner life."
}
