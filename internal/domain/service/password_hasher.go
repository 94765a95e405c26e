package service

// PasswordHasher defines the interface for password hashing and verification
// on the human login path. This abstracts the underlying hashing algorithm
// (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
