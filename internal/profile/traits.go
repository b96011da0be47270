package profile

import (
	"fmt"
	"strings"

	"github.com/easeaico/companion-web/internal/types"
)

// TraitDescriptor labels one personality slider.
type TraitDescriptor struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LowLabel    string `json:"lowLabel"`
	HighLabel   string `json:"highLabel"`
}

var Traits = []TraitDescriptor{
	{Key: "extroversion", Name: "Extroversion", Description: "How social and outgoing they are", LowLabel: "Introverted", HighLabel: "Extroverted"},
	{Key: "dominance", Name: "Dominance", Description: "How assertive or submissive they are", LowLabel: "Submissive", HighLabel: "Dominant"},
	{Key: "playfulness", Name: "Playfulness", Description: "How serious or fun-loving they are", LowLabel: "Serious", HighLabel: "Playful"},
	{Key: "emotionality", Name: "Emotionality", Description: "How logical or emotionally driven they are", LowLabel: "Logical", HighLabel: "Emotional"},
	{Key: "adventurousness", Name: "Adventurousness", Description: "How cautious or risk-taking they are", LowLabel: "Cautious", HighLabel: "Adventurous"},
	{Key: "romanticism", Name: "Romanticism", Description: "How platonic or romantic they can be", LowLabel: "Platonic", HighLabel: "Romantic"},
	{Key: "supportiveness", Name: "Supportiveness", Description: "How challenging or supportive they are", LowLabel: "Challenging", HighLabel: "Supportive"},
	{Key: "formality", Name: "Formality", Description: "How casual or formal they communicate", LowLabel: "Casual", HighLabel: "Formal"},
}

// TraitValue returns the value of the named trait in p.
func TraitValue(p types.CompanionPersonality, key string) (int, bool) {
	switch strings.ToLower(key) {
	case "extroversion":
		return p.Extroversion, true
	case "dominance":
		return p.Dominance, true
	case "playfulness":
		return p.Playfulness, true
	case "emotionality":
		return p.Emotionality, true
	case "adventurousness":
		return p.Adventurousness, true
	case "romanticism":
		return p.Romanticism, true
	case "supportiveness":
		return p.Supportiveness, true
	case "formality":
		return p.Formality, true
	default:
		return 0, false
	}
}

// SetTrait sets the named trait in p. Values are stored as given; range
// checking is left to the caller.
func SetTrait(p *types.CompanionPersonality, key string, value int) error {
	switch strings.ToLower(key) {
	case "extroversion":
		p.Extroversion = value
	case "dominance":
		p.Dominance = value
	case "playfulness":
		p.Playfulness = value
	case "emotionality":
		p.Emotionality = value
	case "adventurousness":
		p.Adventurousness = value
	case "romanticism":
		p.Romanticism = value
	case "supportiveness":
		p.Supportiveness = value
	case "formality":
		p.Formality = value
	default:
		return fmt.Errorf("unknown trait %q", key)
	}
	return nil
}
