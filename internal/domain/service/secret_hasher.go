// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher defines the one-way transform applied to agent client secrets
// and issued token strings before they are stored. The output is a
// deterministic, fixed-length hex digest so that lookups can match on the
// stored value; verification is hash-and-compare, there is no decryption
// path. Callers must never log the raw secret.
type SecretHasher interface {
	// Hash returns the hex digest of the given secret.
	Hash(secret string) string
}
