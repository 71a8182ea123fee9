package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alcanciapp/alcanciapp-be/internal/auth"
	"github.com/alcanciapp/alcanciapp-be/internal/models"
	"github.com/google/uuid"
)

// SessionServiceProvider defines the interface for session services.
type SessionServiceProvider interface {
	IssueAnonymousSession(ctx context.Context) (string, models.User, error)
	Authenticate(ctx context.Context, token string) (string, error)
	PruneExpired(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (active int64, expired int64, err error)
}

// SessionService issues and verifies anonymous bearer sessions.
type SessionService struct {
	db     *sql.DB
	pepper string
	ttl    time.Duration
}

// NewSessionService creates a new SessionService. ttlDays controls how far
// in the future new sessions expire.
func NewSessionService(db *sql.DB, pepper string, ttlDays int) *SessionService {
	return &SessionService{
		db:     db,
		pepper: pepper,
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// Expiry timestamps are stored as RFC 3339 in UTC so that string comparison
// in SQL orders them chronologically.
func formatExpiry(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// IssueAnonymousSession creates a new user and a session for it in a single
// transaction, and returns the raw token together with the new user. The raw
// token exists nowhere else: only its digest is stored.
func (s *SessionService) IssueAnonymousSession(ctx context.Context) (string, models.User, error) {
	token, err := auth.NewToken()
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	user := models.User{ID: uuid.New().String()}
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: auth.HashToken(token, s.pepper),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	// Both rows land atomically: a verifier must never observe a user
	// without its session or a session without its user.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "INSERT INTO users (id) VALUES (?)", user.ID); err != nil {
		return "", models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, user_id, token_hash, expires_at) VALUES (?, ?, ?, ?)",
		session.ID, session.UserID, session.TokenHash, formatExpiry(session.ExpiresAt),
	)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to insert session: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return "", models.User{}, fmt.Errorf("failed to commit session: %w", err)
	}

	return token, user, nil
}

// Authenticate resolves a raw bearer token to a user id. A token that was
// never issued and one whose session expired both fail with
// auth.ErrInvalidCredential; verification is read-only.
func (s *SessionService) Authenticate(ctx context.Context, token string) (string, error) {
	tokenHash := auth.HashToken(token, s.pepper)

	var userID string
	row := s.db.QueryRowContext(ctx,
		"SELECT user_id FROM sessions WHERE token_hash = ? AND expires_at > ?",
		tokenHash, formatExpiry(time.Now()),
	)
	if err := row.Scan(&userID); err != nil {
		if err == sql.ErrNoRows {
			return "", auth.ErrInvalidCredential
		}
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return userID, nil
}

// PruneExpired deletes sessions whose expiry has passed. Verification never
// depends on this; stale rows already fail the expiry comparison.
func (s *SessionService) PruneExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE expires_at <= ?", formatExpiry(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports how many sessions are currently live and how many are
// expired but not yet swept.
func (s *SessionService) Stats(ctx context.Context) (int64, int64, error) {
	now := formatExpiry(time.Now())

	var active, expired int64
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(CASE WHEN expires_at > ? THEN 1 END), COUNT(CASE WHEN expires_at <= ? THEN 1 END) FROM sessions",
		now, now,
	)
	if err := row.Scan(&active, &expired); err != nil {
		return 0, 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return active, expired, nil
}
