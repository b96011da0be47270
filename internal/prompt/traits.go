package prompt

import "github.com/easeaico/companion-web/internal/types"

// traitRule classifies one personality trait. A value strictly above high
// emits highPhrase, strictly below low emits lowPhrase, anything else is
// neutral and emits nothing. Cutoffs are not symmetric around 50.
type traitRule struct {
	name       string
	value      func(types.CompanionPersonality) int
	high       int
	highPhrase string
	low        int
	lowPhrase  string
}

// traitRules is evaluated in order. Dominance and adventurousness have no rule.
var traitRules = []traitRule{
	{
		name:       "extroversion",
		value:      func(p types.CompanionPersonality) int { return p.Extroversion },
		high:       60,
		highPhrase: "outgoing and social",
		low:        40,
		lowPhrase:  "more reserved and thoughtful",
	},
	{
		name:       "playfulness",
		value:      func(p types.CompanionPersonality) int { return p.Playfulness },
		high:       70,
		highPhrase: "playful and fun-loving",
		low:        30,
		lowPhrase:  "serious and focused",
	},
	{
		name:       "supportiveness",
		value:      func(p types.CompanionPersonality) int { return p.Supportiveness },
		high:       70,
		highPhrase: "very supportive and encouraging",
		low:        30,
		lowPhrase:  "more challenging and direct",
	},
	{
		name:       "emotionality",
		value:      func(p types.CompanionPersonality) int { return p.Emotionality },
		high:       60,
		highPhrase: "emotionally expressive and empathetic",
		low:        40,
		lowPhrase:  "logical and analytical",
	},
	{
		name:       "romanticism",
		value:      func(p types.CompanionPersonality) int { return p.Romanticism },
		high:       60,
		highPhrase: "romantic and affectionate",
		low:        40,
		lowPhrase:  "more platonic and friendly",
	},
	{
		name:       "formality",
		value:      func(p types.CompanionPersonality) int { return p.Formality },
		high:       60,
		highPhrase: "formal and polite in communication",
		low:        40,
		lowPhrase:  "casual and relaxed in speech",
	},
}

// TraitPhrases returns the phrases emitted for p, in rule order.
func TraitPhrases(p types.CompanionPersonality) []string {
	phrases := make([]string, 0, len(traitRules))
	for _, rule := range traitRules {
		v := rule.value(p)
		switch {
		case v > rule.high:
			phrases = append(phrases, rule.highPhrase)
		case v < rule.low:
			phrases = append(phrases, rule.lowPhrase)
		}
	}
	return phrases
}
