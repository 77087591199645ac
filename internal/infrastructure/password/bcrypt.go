package password

import (
	"golang.org/x/crypto/bcrypt"

	"user-service-api/internal/application/ports"
)

type BcryptHasher struct {
	cost int
}

// New returns a bcrypt-backed hasher. A cost of 0 (or anything outside
// bcrypt's range) falls back to the library default.
func New(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
