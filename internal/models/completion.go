package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/adk/model"

	"github.com/easeaico/companion-web/internal/utils"
)

// CompletionConfig points at an OpenAI-compatible chat completions endpoint.
type CompletionConfig struct {
	BaseURL    string
	APIKey     string
	CustomerID string
	Timeout    time.Duration
}

func newCompletionClient(cfg CompletionConfig) (*openai.Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.CustomerID != "" {
		opts = append(opts, option.WithHeader("customerId", cfg.CustomerID))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openai.NewClient(opts...)
	return &client, nil
}

// NewCompletionModel creates the chat model backed by the completions endpoint.
func NewCompletionModel(cfg CompletionConfig, modelName string) (model.LLM, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	client, err := newCompletionClient(cfg)
	if err != nil {
		return nil, err
	}
	return newOpenAIModel(client, modelName), nil
}

// CompletionMediaGenerator asks a media model behind the completions endpoint
// for an image or video. The provider answers with text that carries the link.
type CompletionMediaGenerator struct {
	client *openai.Client
	model  string
	kind   utils.MediaKind
}

// NewCompletionMediaGenerator creates a generator for kind. An empty kind
// returns the provider text verbatim, which is how avatars are served.
func NewCompletionMediaGenerator(cfg CompletionConfig, modelName string, kind utils.MediaKind) (*CompletionMediaGenerator, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	client, err := newCompletionClient(cfg)
	if err != nil {
		return nil, err
	}
	return &CompletionMediaGenerator{client: client, model: modelName, kind: kind}, nil
}

// Generate returns the media URL for prompt.
func (g *CompletionMediaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := completeText(ctx, g.client, g.model, prompt)
	if err != nil {
		return "", err
	}
	if g.kind == "" {
		return text, nil
	}
	url, err := utils.ExtractMediaURL(text, g.kind)
	if err != nil {
		return "", fmt.Errorf("extract %s url: %w", g.kind, err)
	}
	return url, nil
}
