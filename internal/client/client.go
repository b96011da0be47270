// Package client calls the companion HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/easeaico/companion-web/internal/api"
	"github.com/easeaico/companion-web/internal/profile"
	"github.com/easeaico/companion-web/internal/types"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("companion api: %d %s", e.Status, e.Message)
}

// Client talks to one companion server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient uses a client with a
// two minute timeout, long enough for video generation.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Chat sends one chat turn. history must not include message.
func (c *Client) Chat(ctx context.Context, companion types.CompanionProfile, history []types.Message, message string) (api.ChatResponse, error) {
	var resp api.ChatResponse
	err := c.do(ctx, http.MethodPost, "/api/chat", api.ChatRequest{
		Message:             message,
		Companion:           &companion,
		ConversationHistory: history,
	}, &resp)
	return resp, err
}

// SystemPrompt returns the compiled system prompt for companion.
func (c *Client) SystemPrompt(ctx context.Context, companion types.CompanionProfile) (string, error) {
	var resp api.PromptResponse
	err := c.do(ctx, http.MethodPost, "/api/prompt", api.PromptRequest{Companion: &companion}, &resp)
	return resp.SystemPrompt, err
}

// GenerateAvatar returns the avatar URL for prompt.
func (c *Client) GenerateAvatar(ctx context.Context, prompt, companionName string) (string, error) {
	var resp api.AvatarResponse
	err := c.do(ctx, http.MethodPost, "/api/generate-avatar", api.AvatarRequest{Prompt: prompt, CompanionName: companionName}, &resp)
	return resp.AvatarURL, err
}

// GenerateImage returns the image URL for prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	var resp api.ImageResponse
	err := c.do(ctx, http.MethodPost, "/api/generate-image", api.MediaRequest{Prompt: prompt}, &resp)
	return resp.ImageURL, err
}

// GenerateVideo returns the video URL for prompt.
func (c *Client) GenerateVideo(ctx context.Context, prompt string) (string, error) {
	var resp api.VideoResponse
	err := c.do(ctx, http.MethodPost, "/api/generate-video", api.MediaRequest{Prompt: prompt}, &resp)
	return resp.VideoURL, err
}

// Characters lists the preset companions.
func (c *Client) Characters(ctx context.Context) ([]types.CompanionProfile, error) {
	var resp []types.CompanionProfile
	err := c.do(ctx, http.MethodGet, "/api/characters", nil, &resp)
	return resp, err
}

// Avatars lists the preset avatar URLs.
func (c *Client) Avatars(ctx context.Context) ([]string, error) {
	var resp []string
	err := c.do(ctx, http.MethodGet, "/api/avatars", nil, &resp)
	return resp, err
}

// Traits lists the personality slider descriptors.
func (c *Client) Traits(ctx context.Context) ([]profile.TraitDescriptor, error) {
	var resp []profile.TraitDescriptor
	err := c.do(ctx, http.MethodGet, "/api/traits", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr api.ErrorResponse
		message := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
