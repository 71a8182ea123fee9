package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Credential failures surfaced by Authenticate. Both map to 401; a token
// that never existed and one that expired are deliberately indistinguishable
// to the caller.
var (
	ErrMissingCredential = errors.New("missing or invalid Authorization header")
	ErrInvalidCredential = errors.New("invalid or expired session")
)

// Authenticator resolves a raw bearer token to a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

type contextKey string

// userIDKey is the context key for the authenticated user id.
const userIDKey = contextKey("userID")

// UserID returns the authenticated user id stored by Middleware, or "" when
// the request did not pass through it.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithUserID returns a context carrying the given user id. Used by tests to
// exercise handlers without a full middleware chain.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The second return is false when the header is absent or not
// in bearer form.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// Middleware creates a middleware that authenticates every request via the
// given Authenticator and stores the resolved user id in the context.
func Middleware(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, ErrMissingCredential)
				return
			}

			userID, err := a.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrInvalidCredential) {
					unauthorized(w, err)
					return
				}
				// Backend trouble is not an auth decision; never let it
				// look like a missing or invalid token.
				log.Error().Err(err).Msg("Session lookup failed")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "internal error"})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": err.Error()})
}
