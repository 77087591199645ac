package ports

// PasswordHasher is the boundary to the adaptive one-way hash primitive.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
