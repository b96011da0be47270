// Package chat runs one companion chat turn against the configured model.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/companion-web/internal/models"
	"github.com/easeaico/companion-web/internal/prompt"
	"github.com/easeaico/companion-web/internal/types"
	"github.com/easeaico/companion-web/internal/utils"
)

// Service compiles the companion prompt, assembles the turn and relays the
// model reply unmodified.
type Service struct {
	llm model.LLM
}

// NewService returns a Service backed by llm.
func NewService(llm model.LLM) *Service {
	return &Service{llm: llm}
}

// Reply returns the companion's answer to message. history must not include
// message itself.
func (s *Service) Reply(ctx context.Context, profile types.CompanionProfile, history []types.Message, message string) (string, error) {
	messages := prompt.Assemble(prompt.Compile(profile), history, message)
	req := buildRequest(s.llm.Name(), messages)

	for resp, err := range s.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			slog.Error("chat completion failed", "companion", profile.Name, "error", err.Error())
			return "", fmt.Errorf("generate reply: %w", err)
		}
		if resp == nil || resp.Content == nil {
			return "", models.ErrInvalidResponse
		}
		if usage := resp.UsageMetadata; usage != nil {
			slog.Debug("chat completion usage",
				"companion", profile.Name,
				"prompt_tokens", usage.PromptTokenCount,
				"completion_tokens", usage.CandidatesTokenCount,
			)
		}
		return utils.ExtractContentText(resp.Content), nil
	}
	return "", models.ErrInvalidResponse
}

// buildRequest maps the assembled messages onto an ADK request. The system
// message travels as the system instruction and assistant turns use the
// genai "model" role.
func buildRequest(modelName string, messages []prompt.RoleMessage) *model.LLMRequest {
	req := &model.LLMRequest{
		Model:  modelName,
		Config: &genai.GenerateContentConfig{},
	}
	for _, msg := range messages {
		switch msg.Role {
		case prompt.RoleSystem:
			req.Config.SystemInstruction = genai.NewContentFromText(msg.Content, "system")
		case prompt.RoleAssistant:
			req.Contents = append(req.Contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			req.Contents = append(req.Contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return req
}
