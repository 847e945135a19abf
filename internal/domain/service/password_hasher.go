// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the
// domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// DummyCheck burns one hash comparison against a fixed hash. Called on
	// the unknown-identifier login path so it costs the same as a real
	// password check and does not leak which identifiers exist.
	DummyCheck(password string)
}
