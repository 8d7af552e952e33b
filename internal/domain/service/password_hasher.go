// Package service declares infrastructure contracts the usecase layer
// depends on without knowing their implementations.
package service

// PasswordHasher hashes plaintext passwords and checks candidates against a
// stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
