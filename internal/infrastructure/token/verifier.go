package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"user-service-api/internal/application/ports"
)

// Verifier checks tokens minted by the external issuer with a shared
// HS256 secret and hands back the raw claim map. Authority derivation
// happens downstream, not here.
type Verifier struct {
	jwtSecret string
}

func New(jwtSecret string) ports.TokenVerifier { return &Verifier{jwtSecret: jwtSecret} }

func (v *Verifier) Verify(tokenStr string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(v.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
