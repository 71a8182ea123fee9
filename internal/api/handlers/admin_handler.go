package handlers

import (
	"net/http"

	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes operator-only session maintenance. It is mounted
// only when an admin password hash is configured.
type AdminHandler struct {
	service      services.SessionServiceProvider
	passwordHash string
}

// NewAdminHandler creates a new AdminHandler guarding its endpoints with the
// given bcrypt password hash.
func NewAdminHandler(service services.SessionServiceProvider, passwordHash string) *AdminHandler {
	return &AdminHandler{service: service, passwordHash: passwordHash}
}

// BasicAuth verifies the request's basic-auth password against the
// configured bcrypt hash. The username is ignored.
func (h *AdminHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, password, ok := r.BasicAuth()
		if !ok || bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(password)) != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="alcanciapp admin"`)
			writeError(w, http.StatusUnauthorized, "Admin credentials required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PruneSessions deletes expired session rows on demand.
func (h *AdminHandler) PruneSessions(w http.ResponseWriter, r *http.Request) {
	pruned, err := h.service.PruneExpired(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to prune sessions")
		writeError(w, http.StatusInternalServerError, "Failed to prune sessions")
		return
	}

	log.Info().Int64("pruned", pruned).Msg("Expired sessions pruned by admin")
	writeJSON(w, http.StatusOK, envelope{"pruned": pruned})
}

// SessionStats reports live and expired session counts.
func (h *AdminHandler) SessionStats(w http.ResponseWriter, r *http.Request) {
	active, expired, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read session stats")
		writeError(w, http.StatusInternalServerError, "Failed to read session stats")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"active": active, "expired": expired})
}
