// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher defines one-way password hashing and verification.
// Implementations must use a slow, salted algorithm; hashing the same input twice yields different output.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash yields false, never an error.
	Check(password, hash string) bool
}
