// Package models adapts the chat and media providers to the interfaces the
// companion services consume.
package models

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"runtime"
	"strings"

	"github.com/openai/openai-go/v3"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// ErrInvalidResponse is returned when the provider answers without any choice.
var ErrInvalidResponse = errors.New("invalid response format from AI service")

// openaiModel wraps an OpenAI-compatible chat completions client as a model.LLM.
type openaiModel struct {
	client             *openai.Client
	name               string
	versionHeaderValue string
}

func newOpenAIModel(client *openai.Client, name string) *openaiModel {
	return &openaiModel{
		client: client,
		name:   name,
		versionHeaderValue: fmt.Sprintf("companion-go/%s go/%s",
			"1.0.0", strings.TrimPrefix(runtime.Version(), "go")),
	}
}

func (m *openaiModel) Name() string {
	return m.name
}

// GenerateContent issues one chat completion. Streaming is not supported by
// the upstream endpoint, so stream requests yield the full reply once.
func (m *openaiModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	if req.Config == nil {
		req.Config = &genai.GenerateContentConfig{}
	}
	if req.Config.HTTPOptions == nil {
		req.Config.HTTPOptions = &genai.HTTPOptions{}
	}
	if req.Config.HTTPOptions.Headers == nil {
		req.Config.HTTPOptions.Headers = make(http.Header)
	}
	m.addHeaders(req.Config.HTTPOptions.Headers)

	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

func (m *openaiModel) addHeaders(headers http.Header) {
	headers.Set("user-agent", m.versionHeaderValue)
}

func (m *openaiModel) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	params := buildOpenAIParams(req, m.name)

	resp, err := m.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		slog.Error("failed to call completion API", "model", params.Model, "error", err.Error())
		return nil, fmt.Errorf("failed to call completion API: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return nil, ErrInvalidResponse
	}

	message := resp.Choices[0].Message
	content := &genai.Content{
		Role:  "model",
		Parts: []*genai.Part{},
	}
	if message.Content != "" {
		content.Parts = append(content.Parts, &genai.Part{Text: message.Content})
	}

	return &model.LLMResponse{
		Content:      content,
		TurnComplete: true,
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     int32(resp.Usage.PromptTokens),
			CandidatesTokenCount: int32(resp.Usage.CompletionTokens),
			TotalTokenCount:      int32(resp.Usage.TotalTokens),
		},
	}, nil
}

// completeText sends a single user message and returns the first choice text.
func completeText(ctx context.Context, client *openai.Client, modelName, prompt string) (string, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    modelName,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		slog.Error("failed to call completion API", "model", modelName, "error", err.Error())
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrInvalidResponse
	}
	return resp.Choices[0].Message.Content, nil
}
