package api

import (
	"encoding/json"
	"time"

	"github.com/easeaico/companion-web/internal/profile"
	"github.com/easeaico/companion-web/internal/types"
)

// ErrorResponse is returned by every failing route.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ChatRequest struct {
	Message             string                  `json:"message"`
	Companion           *types.CompanionProfile `json:"companion"`
	ConversationHistory []types.Message         `json:"conversationHistory"`
	// UserPreferences is accepted for compatibility and not used.
	UserPreferences json.RawMessage `json:"userPreferences,omitempty"`
}

type ChatResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PromptRequest struct {
	Companion *types.CompanionProfile `json:"companion"`
}

type PromptResponse struct {
	Success      bool   `json:"success"`
	SystemPrompt string `json:"systemPrompt"`
}

type AvatarRequest struct {
	Prompt        string `json:"prompt"`
	CompanionName string `json:"companionName"`
}

type AvatarResponse struct {
	Success   bool   `json:"success"`
	AvatarURL string `json:"avatarUrl"`
	Prompt    string `json:"prompt"`
}

type MediaRequest struct {
	Prompt string `json:"prompt"`
}

type ImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

type VideoResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"videoUrl"`
}

type OptionsResponse struct {
	Relationships []profile.RelationshipOption `json:"relationships"`
	Interests     []string             `json:"interests"`
}
