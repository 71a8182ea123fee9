package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// tokenBytes is the entropy of a raw session token. 32 random bytes encode
// to a 43-character base64url string.
const tokenBytes = 32

// HashToken returns the lowercase hex SHA-256 digest of token+pepper. This
// is the only form of a token that is ever persisted: a storage compromise
// yields digests that are useless without the pepper, and useless for
// authentication either way.
func HashToken(token, pepper string) string {
	sum := sha256.Sum256([]byte(token + pepper))
	return hex.EncodeToString(sum[:])
}

// NewToken generates a cryptographically random session token, encoded as
// unpadded URL-safe base64.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
