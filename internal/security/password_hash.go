package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of password combined
// with the server-side secret. The scheme is deterministic and shares one
// secret across all users; it exists for compatibility with already-stored
// digests and must not be changed without rehashing every account.
func HashPassword(password string, secret string) string {
	digest := sha256.Sum256([]byte(password + secret))
	return hex.EncodeToString(digest[:])
}

// VerifyPassword recomputes the digest and compares it in constant time.
func VerifyPassword(password string, secret string, storedDigest string) bool {
	computed := HashPassword(password, secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
