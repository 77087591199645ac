package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, exp time.Duration, extra map[string]any) string {
	t.Helper()

	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(exp)),
	}
	for k, v := range extra {
		claims[k] = v
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestVerifier_Success(t *testing.T) {
	v := New("super-secret")

	tok := signToken(t, "super-secret", time.Hour, map[string]any{
		"email": "john@example.com",
		"realm_access": map[string]any{
			"roles": []any{"ADMIN"},
		},
	})

	claims, err := v.Verify(tok)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, "john@example.com", claims["email"])
	access, ok := claims["realm_access"].(map[string]any)
	require.True(t, ok, "nested claims must survive decoding as a map")
	assert.Equal(t, []any{"ADMIN"}, access["roles"])
}

func TestVerifier_Table(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{
			name:   "signature mismatch",
			secret: "k2",
			token:  signTokenHelper(t, "k1", 5*time.Minute),
		},
		{
			name:   "expired token",
			secret: "k1",
			token:  signTokenHelper(t, "k1", -1*time.Minute),
		},
		{
			name:   "malformed token string",
			secret: "k1",
			token:  "not-a-jwt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.secret)

			claims, err := v.Verify(tt.token)
			require.Error(t, err)
			assert.EqualError(t, err, "invalid token")
			assert.Nil(t, claims)
		})
	}
}

func signTokenHelper(t *testing.T, secret string, exp time.Duration) string {
	return signToken(t, secret, exp, map[string]any{"email": "a@b.c"})
}
