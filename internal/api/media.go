package api

import (
	"errors"
	"net/http"

	"github.com/easeaico/companion-web/internal/utils"
)

const (
	msgNoImageURL        = "No image URL found in API response"
	msgNoVideoURL        = "No video URL found in API response"
	msgVideoNotAvailable = "Video generation is not configured"
)

// GenerateAvatar answers POST /api/generate-avatar. The provider text is
// returned as the avatar URL without inspection.
func (h *Handler) GenerateAvatar(w http.ResponseWriter, r *http.Request) {
	var req AvatarRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Prompt == "" || req.CompanionName == "" {
		Error(w, http.StatusBadRequest, msgMissingParams)
		return
	}

	url, err := h.avatar.Generate(r.Context(), req.Prompt)
	if err != nil {
		failure(w, "generate-avatar", err)
		return
	}

	JSON(w, http.StatusOK, AvatarResponse{Success: true, AvatarURL: url, Prompt: req.Prompt})
}

// GenerateImage answers POST /api/generate-image.
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	prompt, ok := mediaPrompt(w, r)
	if !ok {
		return
	}

	url, err := h.image.Generate(r.Context(), prompt)
	if err != nil {
		mediaFailure(w, "generate-image", err, msgNoImageURL)
		return
	}

	JSON(w, http.StatusOK, ImageResponse{Success: true, ImageURL: url})
}

// GenerateVideo answers POST /api/generate-video.
func (h *Handler) GenerateVideo(w http.ResponseWriter, r *http.Request) {
	prompt, ok := mediaPrompt(w, r)
	if !ok {
		return
	}
	if h.video == nil {
		Error(w, http.StatusInternalServerError, msgVideoNotAvailable)
		return
	}

	url, err := h.video.Generate(r.Context(), prompt)
	if err != nil {
		mediaFailure(w, "generate-video", err, msgNoVideoURL)
		return
	}

	JSON(w, http.StatusOK, VideoResponse{Success: true, VideoURL: url})
}

func mediaPrompt(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req MediaRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, msgInvalidBody)
		return "", false
	}
	if req.Prompt == "" {
		Error(w, http.StatusBadRequest, msgPromptRequired)
		return "", false
	}
	return req.Prompt, true
}

func mediaFailure(w http.ResponseWriter, route string, err error, noURLMessage string) {
	if errors.Is(err, utils.ErrNoMediaURL) {
		Error(w, http.StatusInternalServerError, noURLMessage)
		return
	}
	failure(w, route, err)
}
