package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// TokenLength is the number of random bytes in an opaque token. 32 bytes make
// collisions negligible; uniqueness is still backed by a database constraint.
const TokenLength = 32

// GenerateToken returns a cryptographically random opaque token encoded as
// URL-safe base64 (usable in verification links and Authorization headers).
func GenerateToken() (string, error) {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken returns the hex SHA-256 digest of a token. Bearer tokens are
// stored and looked up by digest so a database leak does not leak credentials.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
