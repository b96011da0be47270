package api

import (
	"net/http"

	"github.com/easeaico/companion-web/internal/prompt"
)

// Chat answers POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Message == "" || req.Companion == nil {
		Error(w, http.StatusBadRequest, msgMissingParams)
		return
	}

	reply, err := h.chat.Reply(r.Context(), *req.Companion, req.ConversationHistory, req.Message)
	if err != nil {
		failure(w, "chat", err)
		return
	}

	JSON(w, http.StatusOK, ChatResponse{
		Success:   true,
		Message:   reply,
		Timestamp: h.now().UTC(),
	})
}

// Prompt answers POST /api/prompt with the compiled system prompt.
func (h *Handler) Prompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Companion == nil {
		Error(w, http.StatusBadRequest, msgMissingParams)
		return
	}

	JSON(w, http.StatusOK, PromptResponse{
		Success:      true,
		SystemPrompt: prompt.Compile(*req.Companion),
	})
}
