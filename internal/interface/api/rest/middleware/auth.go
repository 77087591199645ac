package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-service-api/internal/application/authz"
	"user-service-api/internal/application/ports"
)

const (
	CtxClaims      = "authClaims"
	CtxAuthorities = "authAuthorities"
	CtxEmail       = "authEmail"
)

const emailClaim = "email"

// Authenticate is the first stage of the auth pipeline: verify the
// bearer token, derive authorities from its claims and attach both to
// the request context. Authorization decisions happen in later stages.
func Authenticate(verifier ports.TokenVerifier, extractor authz.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxAuthorities, extractor.Authorities(claims))
		if email, ok := claims[emailClaim].(string); ok {
			c.Set(CtxEmail, email)
		}

		c.Next()
	}
}

// RequireAuthority gates a route on one authority. A denied caller gets
// 403, never 404: authorization failures are not hidden as missing
// resources.
func RequireAuthority(authority string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AuthoritiesFromCtx(c).Has(authority) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "access denied"},
			)
			return
		}

		c.Next()
	}
}

func AuthoritiesFromCtx(c *gin.Context) authz.Authorities {
	v, ok := c.Get(CtxAuthorities)
	if !ok {
		return nil
	}
	authorities, _ := v.(authz.Authorities)
	return authorities
}

// EmailFromCtx returns the caller's email claim, or "" when the token
// carried none.
func EmailFromCtx(c *gin.Context) string {
	v, ok := c.Get(CtxEmail)
	if !ok {
		return ""
	}
	email, _ := v.(string)
	return email
}
