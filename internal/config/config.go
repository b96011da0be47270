// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Provider names a backend for chat or media generation.
type Provider string

const (
	ProviderOpenAI      Provider = "openai"
	ProviderCompletions Provider = "completions"
	ProviderGemini      Provider = "gemini"
)

// Config holds runtime settings.
type Config struct {
	Port               int      `env:"PORT" envDefault:"3000"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	ChatProvider  Provider `env:"CHAT_PROVIDER" envDefault:"openai"`
	MediaProvider Provider `env:"MEDIA_PROVIDER" envDefault:"completions"`

	// OpenAI-compatible completions endpoint
	CompletionBaseURL    string `env:"COMPLETION_BASE_URL" envDefault:"https://oi-server.onrender.com"`
	CompletionAPIKey     string `env:"COMPLETION_API_KEY"`
	CompletionCustomerID string `env:"COMPLETION_CUSTOMER_ID"`
	ChatModel            string `env:"CHAT_MODEL" envDefault:"openrouter/claude-sonnet-4"`
	ImageModel           string `env:"IMAGE_MODEL" envDefault:"replicate/black-forest-labs/flux-1.1-pro"`
	VideoModel           string `env:"VIDEO_MODEL" envDefault:"replicate/google/veo-3"`

	// Gemini
	GoogleAPIKey     string `env:"GOOGLE_API_KEY"`
	GeminiChatModel  string `env:"GEMINI_CHAT_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	AspectRatio      string `env:"ASPECT_RATIO" envDefault:"1:1"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider names and the keys each provider needs.
func (c *Config) Validate() error {
	switch c.ChatProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("CHAT_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.ChatProvider)
	}
	switch c.MediaProvider {
	case ProviderCompletions, ProviderGemini:
	default:
		return fmt.Errorf("MEDIA_PROVIDER must be %q or %q, got %q", ProviderCompletions, ProviderGemini, c.MediaProvider)
	}

	if c.UsesCompletions() && strings.TrimSpace(c.CompletionAPIKey) == "" {
		return fmt.Errorf("COMPLETION_API_KEY environment variable is required")
	}
	if c.UsesGemini() && strings.TrimSpace(c.GoogleAPIKey) == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// UsesCompletions reports whether chat or image generation needs the
// completions endpoint. Video generation uses it whenever a key is present.
func (c *Config) UsesCompletions() bool {
	return c.ChatProvider == ProviderOpenAI || c.MediaProvider == ProviderCompletions
}

// VideoEnabled reports whether video generation can be served.
func (c *Config) VideoEnabled() bool {
	return strings.TrimSpace(c.CompletionAPIKey) != ""
}

// UsesGemini reports whether any provider is Gemini.
func (c *Config) UsesGemini() bool {
	return c.ChatProvider == ProviderGemini || c.MediaProvider == ProviderGemini
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
