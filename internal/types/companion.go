// Package types holds the companion profile and chat message shapes shared by
// the prompt compiler, the HTTP API and the client session.
package types

import "time"

// CompanionPersonality holds the eight slider traits, each on a 0-100 scale.
// Values outside the range are passed through untouched.
type CompanionPersonality struct {
	Extroversion    int `json:"extroversion"`
	Dominance       int `json:"dominance"`
	Playfulness     int `json:"playfulness"`
	Emotionality    int `json:"emotionality"`
	Adventurousness int `json:"adventurousness"`
	Romanticism     int `json:"romanticism"`
	Supportiveness  int `json:"supportiveness"`
	Formality       int `json:"formality"`
}

// ResponseStyle tunes the guidance lines of the system prompt.
type ResponseStyle struct {
	Length   ResponseLength `json:"length"`
	Detail   ResponseDetail `json:"detail"`
	Intimacy int            `json:"intimacy"`
}

// CompanionProfile is the persisted persona configuration.
type CompanionProfile struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Avatar           string               `json:"avatar"`
	Personality      CompanionPersonality `json:"personality"`
	Background       string               `json:"background"`
	Interests        []string             `json:"interests"`
	RelationshipType RelationshipType     `json:"relationshipType"`
	ResponseStyle    ResponseStyle        `json:"responseStyle"`
	CreatedAt        time.Time            `json:"createdAt"`
	LastActive       time.Time            `json:"lastActive"`
}
