// Package service defines the domain service contracts implemented by infra.
package service

// PasswordHasher defines the interface for hashing and checking passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
