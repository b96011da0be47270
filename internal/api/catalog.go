package api

import (
	"log/slog"
	"net/http"

	"github.com/easeaico/companion-web/internal/profile"
)

// Characters answers GET /api/characters.
func (h *Handler) Characters(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, profile.Characters(h.now().UTC()))
}

// Avatars answers GET /api/avatars.
func (h *Handler) Avatars(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, profile.PresetAvatars)
}

// Traits answers GET /api/traits.
func (h *Handler) Traits(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, profile.Traits)
}

// Options answers GET /api/options with the relationship choices and
// interest suggestions.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, OptionsResponse{
		Relationships: profile.RelationshipOptions,
		Interests:     profile.InterestSuggestions,
	})
}

// CompanionSchema answers GET /api/schema/companion.
func (h *Handler) CompanionSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := profile.Schema()
	if err != nil {
		slog.Error("failed to build companion schema", "error", err.Error())
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	JSON(w, http.StatusOK, schema)
}
