package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"board/internal/domain/service"
)

// sha256Hasher digests opaque secrets (client secrets, bearer tokens) into a
// deterministic hex string. Unlike bcrypt hashes, the digests are stable, so
// they can be used as indexed lookup keys without storing the secret itself.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.SecretHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the secret.
func (h *sha256Hasher) Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return hex.EncodeToString(sum[:])
}
