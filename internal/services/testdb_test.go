package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alcanciapp/alcanciapp-be/internal/auth"
	"github.com/alcanciapp/alcanciapp-be/internal/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testPepper = "test-pepper"

// newTestDB opens an in-memory SQLite database with the real schema. A
// single connection is forced so every query sees the same memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

// createUser inserts a bare user row and returns its id.
func createUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec("INSERT INTO users (id) VALUES (?)", id)
	require.NoError(t, err)
	return id
}

// createSession inserts a session row for an existing user with the given
// expiry, bypassing the issuer so tests can control the clock.
func createSession(t *testing.T, db *sql.DB, userID, token string, expiresAt time.Time) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO sessions (id, user_id, token_hash, expires_at) VALUES (?, ?, ?, ?)",
		uuid.New().String(), userID, auth.HashToken(token, testPepper), formatExpiry(expiresAt),
	)
	require.NoError(t, err)
}

func testCtx() context.Context {
	return context.Background()
}
