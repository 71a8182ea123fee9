package handlers

import (
	"net/http"

	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for anonymous session issuance.
type AuthHandler struct {
	service services.SessionServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.SessionServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// Anonymous mints a new anonymous user and bearer token. The raw token in
// this response is the only copy that will ever exist outside the client;
// retrying after a failure simply mints a fresh identity.
func (h *AuthHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
	token, user, err := h.service.IssueAnonymousSession(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue anonymous session")
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"token": token,
		"user":  map[string]string{"id": user.ID},
	})
}
