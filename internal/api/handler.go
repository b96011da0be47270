// Package api exposes the companion HTTP routes. Each route reshapes one
// provider call into the JSON contract the web front-end expects.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/easeaico/companion-web/internal/models"
	"github.com/easeaico/companion-web/internal/types"
)

const (
	msgMissingParams   = "Missing required parameters"
	msgPromptRequired  = "Prompt is required"
	msgInvalidBody     = "Invalid request body"
	msgInvalidResponse = "Invalid response format from AI service"
)

// Replier produces the companion's reply for one chat turn.
type Replier interface {
	Reply(ctx context.Context, profile types.CompanionProfile, history []types.Message, message string) (string, error)
}

// Generator turns a prompt into a media URL.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler serves the companion API.
type Handler struct {
	chat   Replier
	avatar Generator
	image  Generator
	video  Generator
	now    func() time.Time
}

// NewHandler creates a Handler. video may be nil when video generation is
// not configured.
func NewHandler(chat Replier, avatar, image, video Generator) *Handler {
	return &Handler{
		chat:   chat,
		avatar: avatar,
		image:  image,
		video:  video,
		now:    time.Now,
	}
}

// RegisterRoutes mounts the API under /api.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Post("/prompt", h.Prompt)
		r.Post("/generate-avatar", h.GenerateAvatar)
		r.Post("/generate-image", h.GenerateImage)
		r.Post("/generate-video", h.GenerateVideo)

		r.Get("/characters", h.Characters)
		r.Get("/avatars", h.Avatars)
		r.Get("/traits", h.Traits)
		r.Get("/options", h.Options)
		r.Get("/schema/companion", h.CompanionSchema)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

// Error writes the failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Success: false, Error: message})
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// failure writes a 500 for an upstream error. Missing choices get the fixed
// message; anything else exposes the error text.
func failure(w http.ResponseWriter, route string, err error) {
	slog.Error("upstream request failed", "route", route, "error", err.Error())
	message := err.Error()
	if errors.Is(err, models.ErrInvalidResponse) {
		message = msgInvalidResponse
	}
	Error(w, http.StatusInternalServerError, message)
}
